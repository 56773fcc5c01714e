// Package cli wires the miaumon command line: flags, config, and the
// dashboard startup/shutdown sequence.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/miaudev/miaumon/internal/clipboard"
	"github.com/miaudev/miaumon/internal/config"
	"github.com/miaudev/miaumon/internal/logger"
	"github.com/miaudev/miaumon/internal/monitor"
	"github.com/miaudev/miaumon/internal/stats"
	"github.com/miaudev/miaumon/internal/ui"
)

var (
	flagConfig   string
	flagLogFile  string
	flagInterval time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "miaumon",
	Short: "Live terminal dashboard for the miau dev stack",
	Long: `miaumon watches the miau development processes and log stream.

Every tick it samples the dev processes (wails, backend, vite), system
CPU/memory, and the SQLite database size, and tails the dev log. Press
"e" to extract the most recent error block from the log and copy it to
the clipboard (saved to a file when no clipboard is available).

The log path comes from MIAU_LOG, the primary process PID from WAILS_PID.`,
	RunE:          runMonitor,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/miau/monitor.yaml)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "monitored log file (overrides MIAU_LOG)")
	rootCmd.Flags().DurationVar(&flagInterval, "interval", 0, "refresh interval (default 2s)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runMonitor loads config, acquires the terminal, and drives the event loop
// until an interrupt.
func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	if flagInterval > 0 {
		cfg.Interval = flagInterval
	}

	log := logger.NewEnvLogger("[miaumon]")

	provider := stats.NewProvider()
	aggregator := stats.NewAggregator(provider, cfg.Services)
	dispatcher := monitor.NewDispatcher(cfg.LogFile, cfg.ErrorFile, clipboard.NewCopier(), log)
	renderer := ui.NewRenderer(cfg.DevURL, cfg.Interval)

	// Interrupt is the only termination path.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Raw mode is scoped to the loop's lifetime; Restore runs on every
	// exit path, including a panic unwinding the loop body.
	term, err := monitor.EnterRaw(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.Restore()

	loop := monitor.NewLoop(monitor.Options{
		LogFile:    cfg.LogFile,
		TailLines:  cfg.TailLines,
		DBPath:     cfg.DBPath,
		Interval:   cfg.Interval,
		Aggregator: aggregator,
		Dispatcher: dispatcher,
		Renderer:   renderer,
		Keys:       monitor.Keys(os.Stdin),
		Out:        os.Stdout,
		Width:      func() int { return monitor.Width(os.Stdout, 100) },
		Log:        log,
	})
	return loop.Run(ctx)
}
