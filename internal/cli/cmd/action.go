package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newStartCmd creates the start command
func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>...",
		Short: "Start torrents by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			if err := newService().Start(cmd.Context(), ids...); err != nil {
				return fmt.Errorf("start torrents: %w", err)
			}
			fmt.Printf("started %d torrent(s)\n", len(ids))
			return nil
		},
	}
}

// newStopCmd creates the stop command
func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <id>...",
		Short: "Stop torrents by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			if err := newService().Stop(cmd.Context(), ids...); err != nil {
				return fmt.Errorf("stop torrents: %w", err)
			}
			fmt.Printf("stopped %d torrent(s)\n", len(ids))
			return nil
		},
	}
}

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <magnet-or-url-or-file>",
		Short: "Add a torrent to the daemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := newService().Add(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("add torrent: %w", err)
			}
			fmt.Printf("added %q (id %d)\n", added.Name, added.ID)
			return nil
		},
	}
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid torrent id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
