package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager/internal/cli/cmd/utils"
	"github.com/matjam/slidepager/internal/ipc"
	"github.com/matjam/slidepager/internal/types"
	"github.com/spf13/cobra"
)

// NewSlideCmds returns one command per direction.
func NewSlideCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(types.Directions))
	for _, dir := range types.Directions {
		cmds = append(cmds, newSlideCmd(dir))
	}
	return cmds
}

func newSlideCmd(dir types.Direction) *cobra.Command {
	var steps int

	c := &cobra.Command{
		Use:   fmt.Sprintf("%s [before-image] [after-image]", dir),
		Short: fmt.Sprintf("Slide the current image out towards the %s", edge(dir)),
		Long: fmt.Sprintf(`Slides before-image out of the window towards the %s while
after-image slides in behind it. Without images the configured defaults
are used.`, edge(dir)),
		Args: cobra.RangeArgs(0, 2),
		Run: func(cmd *cobra.Command, args []string) {
			req, err := BuildTransitionRequest(dir, steps, args)
			if err != nil {
				log.Fatalf("%v", err)
			}
			res, err := ipc.SendTransition(req)
			if err != nil {
				log.Fatalf("Failed to send '%s' command: %v", dir, err)
			}
			log.Info(res.Message)
		},
	}
	c.Flags().IntVarP(&steps, "steps", "s", 0, "frames the slide takes (default from config)")
	return c
}

// BuildTransitionRequest reads the optional image files named in args.
func BuildTransitionRequest(dir types.Direction, steps int, args []string) (ipc.TransitionRequest, error) {
	req := ipc.TransitionRequest{Direction: dir.String()}
	if steps < 0 {
		return req, fmt.Errorf("steps must be positive, got %d", steps)
	}
	if steps > 0 {
		req.Steps = ipc.StepCount(steps)
	}

	files := []*[]byte{&req.Before, &req.After}
	for i, arg := range args {
		data, err := os.ReadFile(utils.CanonicalPath(arg))
		if err != nil {
			return req, fmt.Errorf("error reading image: %w", err)
		}
		*files[i] = data
	}
	return req, nil
}

func edge(dir types.Direction) string {
	switch dir {
	case types.DirectionUp:
		return "top"
	case types.DirectionDown:
		return "bottom"
	}
	return dir.String()
}
