package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager"
	"github.com/matjam/slidepager/internal/cli/cmd"
	"github.com/matjam/slidepager/internal/cli/cmd/utils"
	"github.com/matjam/slidepager/internal/ipc"
	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slidepager",
	Short: "A hardware accelerated image pager",
	Long: `Slidepager shows one image at a time in an OpenGL window and pages
between images by sliding the current one out while the next slides in.
Run it without a subcommand to start the window, then drive it with the
up, right, down and left commands.`,
	Run: func(c *cobra.Command, args []string) {
		if v, err := c.Flags().GetBool("show-config"); err == nil && v {
			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			log.Infof("All settings:")
			utils.PrintJSONColored(viper.AllSettings())
			return
		}

		if v, err := c.Flags().GetBool("version"); err == nil && v {
			log.Info(VersionLine())
			return
		}

		if v, err := c.Flags().GetBool("installconfig"); err == nil && v {
			if _, err := utils.InstallDefaultConfig(); err != nil {
				log.Fatalf("Error installing config file: %v", err)
			}
			return
		}

		start()
	},
}

// VersionLine is the coloured banner printed by --version.
func VersionLine() string {
	babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	return babyBlue.Render("slidepager") + " version " +
		green.Render(strings.Trim(slidepager.Version, "\n\r "))
}

func start() {
	if err := ValidateConfig(viper.GetViper()); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if v, err := rootCmd.PersistentFlags().GetBool("background"); err == nil && v {
		ctx := &daemon.Context{
			PidFileName: filepath.Join(filepath.Dir(ipc.SocketPath()), "slidepager.pid"),
			PidFilePerm: 0644,
			WorkDir:     "/",
			Umask:       027,
			Env:         append(os.Environ(), "BACKGROUND_PROCESS=1"),
		}

		child, err := ctx.Reborn()
		if err != nil {
			log.Fatalf("Failed to start in background: %v", err)
		}
		if child != nil {
			log.Infof("slidepager started in background with PID %d", child.Pid)
			return
		}
		defer ctx.Release()
	}

	cmd.StartManager()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	RegisterFlags(rootCmd)

	rootCmd.AddCommand(cmd.NewStartCmd(start))
	rootCmd.AddCommand(cmd.NewSlideCmds()...)
	rootCmd.AddCommand(cmd.NewNextCmd())
	rootCmd.AddCommand(cmd.NewPrevCmd())
	rootCmd.AddCommand(cmd.NewLoadCmd())
	rootCmd.AddCommand(cmd.NewCancelCmd())
	rootCmd.AddCommand(cmd.NewStatusCmd())
	rootCmd.AddCommand(cmd.NewStopCmd())
	rootCmd.AddCommand(cmd.NewGenManCmd(rootCmd))
}
