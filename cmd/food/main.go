// Command food runs the Smart Kitchen web front-end and offers a few
// maintenance commands against its backend and session store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	food "github.com/19990921ck-dev/food"
	"github.com/19990921ck-dev/food/pkg/config"
	"github.com/19990921ck-dev/food/pkg/i18n"
	"github.com/19990921ck-dev/food/pkg/logger"
	"github.com/19990921ck-dev/food/pkg/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string
	root := &cobra.Command{
		Use:           "food",
		Short:         "Smart Kitchen front-end and API gateway",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, ".env files to load (default: ./.env when present)")

	root.AddCommand(newServeCmd(&envFiles))
	root.AddCommand(newCallCmd(&envFiles))
	root.AddCommand(newRecipeCmd(&envFiles))
	root.AddCommand(newSessionCmd(&envFiles))
	return root
}

// app is the state every command starts from.
type app struct {
	cfg    food.Config
	logger *slog.Logger
	module *food.Module
}

func loadApp(envFiles []string) (*app, error) {
	var cfg food.Config
	if err := config.Load(&cfg, envFiles...); err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(web.RequestIDExtractor()),
	}
	if cfg.LogFormat != "" {
		f := logger.Format(strings.ToLower(cfg.LogFormat))
		if f != logger.FormatJSON && f != logger.FormatText {
			return nil, fmt.Errorf("LOG_FORMAT: unknown format %q", cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	tr, err := i18n.NewTranslator(i18n.Embedded(), i18n.EmbeddedPattern,
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	m, err := food.New(cfg, append(web.ModuleOptions(cfg.BasePath),
		food.WithLogger(log),
		food.WithTranslator(tr),
	)...)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: log, module: m}, nil
}
