package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/malagasr/supply-alert/internal/cache"
	"github.com/malagasr/supply-alert/internal/config"
	"github.com/malagasr/supply-alert/internal/dashboard"
	"github.com/malagasr/supply-alert/internal/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagRefresh bool
)

// memo lives for the process; repeated commands in one run share it.
var memo = cache.New()

var rootCmd = &cobra.Command{
	Use:   "supplyalert",
	Short: "Supply chain intelligence dashboard",
	Long:  "supplyalert aggregates freight news, border wait times, and weather disruptions into a terminal dashboard.",
	RunE:  runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagRefresh, "refresh", false, "bypass cached data and refetch everything")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(borderCmd)
	rootCmd.AddCommand(askCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	builder, _, err := newBuilder()
	if err != nil {
		return err
	}

	snap := builder.Snapshot(cmd.Context())
	fmt.Print(renderSnapshot(snap))
	return nil
}

// newBuilder loads config and wires the shared cache. --refresh flushes
// the cache first so every fetch goes to the network.
func newBuilder() (*dashboard.Builder, *config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if flagRefresh {
		memo.Flush()
	}
	logger := log.New(os.Stderr, "", log.LstdFlags)
	return dashboard.NewBuilder(cfg, memo, logger), cfg, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("supplyalert %s (commit: %s, built: %s)\n", version, commit, date)
		if r := update.Check(context.Background(), version); r != nil {
			fmt.Printf("A newer version is available: %s\n", r.LatestVersion)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
