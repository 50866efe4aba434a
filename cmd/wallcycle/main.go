// Package main is the entry point for the wallcycle CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/darkawower/wallcycle/internal/config"
	"github.com/darkawower/wallcycle/internal/core"
	"github.com/darkawower/wallcycle/internal/ui"
	"github.com/spf13/cobra"

	_ "github.com/darkawower/wallcycle/internal/platform/stub"
	_ "github.com/darkawower/wallcycle/internal/platform/x11"
)

const version = "0.1.0"

var (
	// Global flags
	logFile    string
	dryRun     bool
	verbose    bool
	quiet      bool
	noColor    bool
	retryDelay time.Duration

	// Global output
	out       *ui.Output
	logCloser io.Closer
)

func main() {
	out = ui.DefaultOutput()
	rootCmd := newRootCmd()

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		out.Error("%v", err)
	}
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallcycle <wallpaper_directory> [interval_seconds] [fallback_directory]",
		Short: "Cycle random wallpapers across all connected screens",
		Long: `Wallcycle picks a random image per connected screen from a directory tree
and applies it with feh. With a positive interval it keeps cycling; with
no interval (or 0) it sets the wallpaper once and exits.

If the wallpaper directory does not exist, the fallback directory is used
once and the program exits without cycling.

Signals:
  SIGUSR1  advance to new random wallpapers now
  SIGUSR2  re-detect screens and re-apply the current wallpapers`,
		Version:       version,
		Args:          cobra.RangeArgs(1, 3),
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().StringVar(&logFile, "log-file", config.DefaultLogPath(), "append log messages to this file (empty disables)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be done without doing it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().DurationVar(&retryDelay, "retry-delay", config.DefaultRetryDelay, "delay between failed wallpaper attempts")
	_ = cmd.Flags().MarkHidden("retry-delay")

	return cmd
}

// run validates the arguments and drives the cycle.
func run(cmd *cobra.Command, args []string) error {
	// Arguments are well-formed from here on; errors are not usage errors.
	cmd.SilenceUsage = true

	// Register before anything slow so early signals are not fatal.
	ctrlCh := make(chan os.Signal, 1)
	notifyControlSignals(ctrlCh)
	defer signal.Stop(ctrlCh)

	initOutput()

	cfg, err := config.Parse(args, config.Config{
		LogPath:    logFile,
		RetryDelay: retryDelay,
		DryRun:     dryRun,
		Verbose:    verbose,
		Quiet:      quiet,
		NoColor:    noColor,
	})
	if err != nil {
		return err
	}

	out.Debug("Directory: %s, interval: %ds, fallback: %t", cfg.Dir, cfg.Interval, cfg.Fallback)

	engine := core.New(cfg, core.WithOutput(out))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go forwardSignals(ctx, ctrlCh, engine, out)

	return engine.Run(ctx)
}

// initOutput applies the output flags and opens the log file.
func initOutput() {
	out.SetVerbose(verbose)
	out.SetQuiet(quiet)
	out.SetNoColor(noColor)

	if strings.TrimSpace(logFile) == "" {
		return
	}
	closer, err := out.OpenLog(config.ExpandPath(logFile))
	if err != nil {
		out.Warning("Logging to file disabled: %v", err)
		return
	}
	logCloser = closer
}
