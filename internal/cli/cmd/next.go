package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager/internal/ipc"
	"github.com/spf13/cobra"
)

func NewNextCmd() *cobra.Command {
	var steps int
	c := &cobra.Command{
		Use:   "next",
		Short: "Slide to the next page",
		Run: func(cmd *cobra.Command, args []string) {
			res, err := ipc.SendNext(steps)
			if err != nil {
				log.Fatalf("Failed to send 'next' command: %v", err)
			}
			log.Info(res.Message)
		},
	}
	c.Flags().IntVarP(&steps, "steps", "s", 0, "frames the slide takes (default from config)")
	return c
}

func NewPrevCmd() *cobra.Command {
	var steps int
	c := &cobra.Command{
		Use:   "prev",
		Short: "Slide back to the previous page",
		Run: func(cmd *cobra.Command, args []string) {
			res, err := ipc.SendPrev(steps)
			if err != nil {
				log.Fatalf("Failed to send 'prev' command: %v", err)
			}
			log.Info(res.Message)
		},
	}
	c.Flags().IntVarP(&steps, "steps", "s", 0, "frames the slide takes (default from config)")
	return c
}
