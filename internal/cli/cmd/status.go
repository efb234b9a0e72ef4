package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager/internal/cli/cmd/utils"
	"github.com/matjam/slidepager/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get slidepager status",
		Long:  `Returns the current status of the slidepager process and its last slide.`,
		Run: func(cmd *cobra.Command, args []string) {
			response, err := ipc.SendStatus()
			if err != nil {
				log.Errorf("Error sending command: %v", err)
				return
			}

			utils.PrintJSONColored(response)
		},
	}
}
