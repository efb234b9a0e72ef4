package cmd

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager/internal/cli/cmd/utils"
	"github.com/matjam/slidepager/internal/ipc"
	"github.com/spf13/cobra"
)

func NewLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [page1.png|dir] [page2.jpg] ...",
		Short: "Load a new list of pages into the daemon",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			res, err := ipc.SendLoad(AbsPaths(args))
			if err != nil {
				log.Fatalf("Failed to send 'load' command: %v", err)
			}
			if data, ok := res.Data.(map[string]any); ok {
				log.Infof("Loaded %v pages", data["loaded"])
			}
		},
	}
}

// AbsPaths resolves paths against the working directory, since the daemon
// runs from /.
func AbsPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = utils.CanonicalPath(p)
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		out = append(out, p)
	}
	return out
}
