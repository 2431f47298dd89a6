// Package cmd wires the cobra command tree for the transmission CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JeremPFT/transmission/internal/common"
	"github.com/JeremPFT/transmission/internal/config"
	"github.com/JeremPFT/transmission/internal/rpc"
	"github.com/JeremPFT/transmission/internal/torrent"
)

var (
	// Global flags
	configFile string
	address    string
	verbose    bool
	quiet      bool
	useJSON    bool

	// Shared resources
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transmission",
	Short: "A client for the Transmission download daemon",
	Long: `Transmission is a command-line and interactive client for the
Transmission download daemon's RPC service:
  • List tracked torrents and their status
  • Start, stop, and add torrents
  • Browse the listing interactively with the tui command`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if address != "" {
			cfg.RPC.Address = address
		}
		switch {
		case verbose:
			cfg.Log.Level = "debug"
		case quiet:
			cfg.Log.Level = "warn"
		}
		logger, err = common.NewLogger(cfg)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.config/transmission-cli/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&address, "address", "", "daemon RPC address (default "+rpc.DefaultAddr+")")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimize output")
	rootCmd.PersistentFlags().BoolVar(&useJSON, "json", false, "output in JSON format")

	// Add commands
	rootCmd.AddCommand(
		newListCmd(),
		newStartCmd(),
		newStopCmd(),
		newAddCmd(),
		newTuiCmd(),
		versionCmd,
	)
}

// newService builds the method layer over a fresh RPC client for one
// command invocation.
func newService() *torrent.Service {
	client := rpc.New(cfg.RPC.Address, rpc.WithLogger(logger))
	return torrent.NewService(client, logger)
}
