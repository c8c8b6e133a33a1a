package main

import (
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	food "github.com/19990921ck-dev/food"
	"github.com/19990921ck-dev/food/pkg/httpserver"
	"github.com/19990921ck-dev/food/pkg/redis"
	"github.com/19990921ck-dev/food/pkg/web"
)

func newServeCmd(envFiles *[]string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pages, header clicks and API proxy over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*envFiles)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}

			var (
				rdb    *goredis.Client
				checks []httpserver.Check
			)
			if a.cfg.SessionBackend == food.BackendRedis {
				rdb, err = redis.Connect(ctx, a.cfg.Redis)
				if err != nil {
					return err
				}
				defer func() { _ = rdb.Close() }()
				checks = append(checks, redis.Healthcheck(rdb))
			}

			var cmdable goredis.Cmdable
			if rdb != nil {
				cmdable = rdb
			}
			slots, err := web.SlotsFor(a.cfg, cmdable)
			if err != nil {
				return err
			}
			if (a.cfg.SessionBackend == "" || a.cfg.SessionBackend == food.BackendCookie) && web.EphemeralCookieSecret(a.cfg) {
				a.logger.WarnContext(ctx, "COOKIE_SECRETS is not set, logins end when the server stops")
			}

			handler := web.NewHandler(a.module, slots,
				web.WithLogger(a.logger),
				web.WithReadinessChecks(checks...),
				web.WithCORSOrigins(a.cfg.CORSOrigins...),
			)
			a.logger.InfoContext(ctx, "starting",
				slog.String("addr", a.cfg.HTTP.Addr),
				slog.String("base_path", a.module.Links().Base()),
				slog.String("session_backend", string(a.cfg.SessionBackend)),
			)
			return httpserver.New(a.cfg.HTTP, a.logger).Run(ctx, handler.Router())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
