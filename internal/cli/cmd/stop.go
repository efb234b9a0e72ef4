package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the slidepager daemon",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendStop(); err != nil {
				log.Fatalf("Failed to send 'stop' command: %v", err)
			}
			log.Info("Stop command sent")
		},
	}
}

func NewCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Abandon the running slide, leaving its last frame on screen",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendCancel(); err != nil {
				log.Fatalf("Failed to send 'cancel' command: %v", err)
			}
			log.Info("Cancel command sent")
		},
	}
}
