package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// User records the session identifier of the logged-in user.
func User(idName string) slog.Attr { return slog.String("user", idName) }

// Action records the remote API action name.
func Action(action string) slog.Attr { return slog.String("action", action) }

func CallID(id string) slog.Attr { return slog.String("call_id", id) }

// Control records the id of a header control.
func Control(id string) slog.Attr { return slog.String("control", id) }

func Page(name string) slog.Attr { return slog.String("page", name) }
