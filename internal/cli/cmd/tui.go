package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JeremPFT/transmission/internal/tui"
)

// newTuiCmd creates the tui command
func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse torrents interactively",
		Long: `Open the interactive torrent listing. Navigation walks the
annotated entries; enter toggles the selected torrent, a adds one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(newService(), logger)
		},
	}
}
