package cmd

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/matjam/slidepager/internal/cli/cmd/utils"
	"github.com/matjam/slidepager/internal/deck"
	"github.com/matjam/slidepager/internal/fetch"
	"github.com/matjam/slidepager/internal/frame"
	"github.com/matjam/slidepager/internal/glfwhost"
	"github.com/matjam/slidepager/internal/gles/gogl"
	"github.com/matjam/slidepager/internal/imagecodec"
	"github.com/matjam/slidepager/internal/ipc"
	"github.com/matjam/slidepager/internal/pager"
	"github.com/matjam/slidepager/internal/status"
	"github.com/matjam/slidepager/internal/transition"
	"github.com/matjam/slidepager/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewStartCmd(start func()) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Open the slide window and listen for commands",
		Run: func(cmd *cobra.Command, args []string) {
			start()
		},
	}
}

// StartManager opens the window, builds the render pipeline and runs it on
// the calling thread until a stop command arrives or the window is closed.
func StartManager() {
	log.Infof("StartManager() started in PID: %d", os.Getpid())

	if os.Getenv("BACKGROUND_PROCESS") == "1" {
		setupRotatingLogger()
	}

	if _, err := ipc.SendStatus(); err == nil {
		log.Infof("slidepager is already running, exiting")
		os.Exit(0)
	}

	win, err := glfwhost.New(glfwhost.Config{
		Width:   viper.GetInt("width"),
		Height:  viper.GetInt("height"),
		Visible: true,
	})
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}
	defer win.Close()

	gl, err := gogl.New()
	if err != nil {
		log.Fatalf("Failed to load OpenGL: %v", err)
	}
	log.Infof("OpenGL %s", gl.Version())

	board := status.DefaultBoard()
	sched := frame.NewScheduler(win)
	ctrl := transition.NewController(gl, win, sched,
		transition.WithStatus(status.Multi{board, status.LogSink{}}))
	defer ctrl.Close()

	width, height := win.Size()
	decoder := imagecodec.NewDecoder(width, height, types.ScalingMode(viper.GetString("scale_mode")))
	slides := pager.New(ctrl, decoder)
	if err := slides.Initialize(); err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	client := fetch.NewClient(time.Duration(viper.GetInt("fetch_timeout")) * time.Second)
	defer client.Close()

	manager := ipc.NewManager(ipc.ManagerConfig{
		Deck:      loadPages(),
		Slides:    slides,
		Progress:  ctrl,
		Scheduler: sched,
		Display:   win,
		Board:     board,
		Defaults:  fetch.NewAssets(client, viper.GetString("before_url"), viper.GetString("after_url")),
		Steps:     viper.GetInt("steps"),
	})

	sockPath := ipc.SocketPath()
	server := ipc.NewServer(manager)
	go func() {
		log.Infof("Starting socket server on %s", sockPath)
		if err := ipc.Serve(server, sockPath); err != nil {
			log.Errorf("Socket server error: %v", err)
		}
	}()

	manager.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ipc.Shutdown(ctx, server, sockPath); err != nil {
		log.Warnf("Socket server shutdown: %v", err)
	}
	log.Infof("slidepager exited")
}

// loadPages reads the configured pages directory. A missing directory only
// disables next and prev until pages are loaded over IPC.
func loadPages() *deck.Deck {
	dir := utils.CanonicalPath(viper.GetString("pages"))
	pages, err := deck.ReadDir(dir)
	if err != nil {
		log.Warnf("No pages loaded from %s: %v", dir, err)
		return deck.New(nil)
	}

	d := deck.New(pages)
	if viper.GetBool("shuffle") {
		d.Shuffle()
	}
	log.Infof("Found %d pages in %s", d.Len(), dir)
	log.Infof("Shuffle: %v", viper.GetBool("shuffle"))
	return d
}

func setupRotatingLogger() {
	logDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "slidepager")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("failed to create log directory: %v", err)
	}
	logPath := filepath.Join(logDir, "slidepager.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
	if !viper.GetBool("debug") {
		log.SetLevel(log.InfoLevel)
	}
}
