package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JeremPFT/transmission/pkg/format"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List torrents tracked by the daemon",
		Long: `List all torrents the daemon tracks with their id, status, and name.

Examples:
  transmission list          # Aligned table
  transmission list --json   # JSON array`,
		RunE: func(cmd *cobra.Command, args []string) error {
			torrents, err := newService().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list torrents: %w", err)
			}

			if useJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(torrents)
			}

			fmt.Print(format.List(torrents))
			return nil
		},
	}
	return cmd
}
