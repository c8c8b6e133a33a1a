package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	food "github.com/19990921ck-dev/food"
	"github.com/19990921ck-dev/food/pkg/redis"
	"github.com/19990921ck-dev/food/pkg/session"
)

var errSessionBackend = errors.New("session commands need the file or redis backend")

func newSessionCmd(envFiles *[]string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or change the stored login of a shared session backend",
	}
	cmd.AddCommand(newSessionShowCmd(envFiles))
	cmd.AddCommand(newSessionClearCmd(envFiles))
	cmd.AddCommand(newSessionLoginCmd(envFiles))
	return cmd
}

// openStore returns the store of the configured backend and a func
// releasing it.
func openStore(ctx context.Context, a *app) (*session.Store, func(), error) {
	switch a.cfg.SessionBackend {
	case food.BackendFile:
		return session.NewStore(session.NewFileSlot(a.cfg.SessionFile), session.WithLogger(a.logger)), func() {}, nil
	case food.BackendRedis:
		rdb, err := redis.Connect(ctx, a.cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		slot := session.NewRedisSlot(rdb, a.cfg.Redis.SessionKey, a.cfg.Redis.SessionTTL)
		return session.NewStore(slot, session.WithLogger(a.logger)), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%w, got %q", errSessionBackend, a.cfg.SessionBackend)
	}
}

func newSessionShowCmd(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*envFiles)
			if err != nil {
				return err
			}
			store, release, err := openStore(cmd.Context(), a)
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			sess, err := store.Load(cmd.Context())
			switch {
			case errors.Is(err, session.ErrNotFound):
				_, err = fmt.Fprintln(out, "not logged in")
				return err
			case err != nil:
				return err
			}
			_, err = fmt.Fprintf(out, "%s (%s)\n", sess.DisplayName, sess.IDName)
			return err
		},
	}
}

func newSessionClearCmd(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*envFiles)
			if err != nil {
				return err
			}
			store, release, err := openStore(cmd.Context(), a)
			if err != nil {
				return err
			}
			defer release()
			return store.Clear(cmd.Context())
		},
	}
}

func newSessionLoginCmd(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "login IDNAME DISPLAYNAME",
		Short: "Store a login record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*envFiles)
			if err != nil {
				return err
			}
			store, release, err := openStore(cmd.Context(), a)
			if err != nil {
				return err
			}
			defer release()
			return store.Save(cmd.Context(), session.Session{IDName: args[0], DisplayName: args[1]})
		},
	}
}
