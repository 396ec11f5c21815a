package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"

	flip "github.com/grindlemire/go-flip"
	"github.com/grindlemire/go-flip/internal/debug"
)

func newRootCmd() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:           "flipdemo",
		Short:         "Reorder cards with the keyboard and watch them slide",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "Path to a config file (yaml, json or toml)")
	flags.Int("items", 6, "Number of cards")
	flags.Duration("duration", flip.DefaultFlipDuration, "Slide duration")
	flags.Int("fps", 60, "Frames per second")
	flags.String("direction", "row", "Card direction: row or column")
	flags.Bool("wrap", false, "Wrap cards onto new lines")
	flags.String("debug-log", "", "Write debug logs to this file")
	if err := v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("bind flags: %v", err))
	}
	return cmd
}

func run(ctx context.Context, cfg demoConfig) error {
	logger := zap.NewNop()
	if cfg.DebugLog != "" {
		l, err := debug.New(cfg.DebugLog)
		if err != nil {
			return err
		}
		defer l.Sync() //nolint:errcheck
		logger = l
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	d, err := newDemo(screen, cfg, clockz.RealClock, logger)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return d.run(ctx)
}
