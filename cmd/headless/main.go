package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/headless/internal/config"
	"github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/internal/stories"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds what every command shares.
type app struct {
	verbose  bool
	registry *stories.Registry
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(&app{registry: stories.Default()})
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errors.Print(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "headless",
		Short: "Headless picker and visibility primitives",
		Long: `headless explores the picker and visibility primitives.

Browse the stories in a live gallery, drive them from the terminal,
replay scripted scenarios against them, or publish a static gallery.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(
		storiesCmd(a),
		renderCmd(a),
		playCmd(a),
		serveCmd(a),
		buildCmd(a),
		publishCmd(a),
		tuiCmd(a),
		versionCmd(),
	)
	return rootCmd
}

// logger writes text logs to w; debug level with --verbose.
func (a *app) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig loads headless.json for the working directory and validates it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// story looks up id or returns E301.
func (a *app) story(id string) (stories.Story, error) {
	st, ok := a.registry.Get(id)
	if !ok {
		return stories.Story{}, errors.New("E301").WithDetail(fmt.Sprintf("No story is registered as %q.", id))
	}
	return st, nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// failure prints a failure message.
func failure(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
