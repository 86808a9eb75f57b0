package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	snapshotPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "anqa-nav",
	Short: "Navigation queries over an elaborated Anqa compilation unit",
	Long: `anqa-nav answers go-to-definition and go-to-declaration queries against
a snapshot dumped by the elaboration phase. Positions are byte offsets in
the snapshot's coordinate space; the editor layer is expected to have
translated cursor positions already.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&snapshotPath, "snapshot", "s", "", "Path to the elaboration snapshot (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(definitionCmd)
	rootCmd.AddCommand(declarationCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
