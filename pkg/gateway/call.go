package gateway

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/19990921ck-dev/food/pkg/i18n"
)

// Notifier shows a blocking, user-facing message.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// logNotifier reports failures to the gateway log when the caller gives no
// notifier.
type logNotifier struct {
	logger *slog.Logger
}

func (n logNotifier) Notify(ctx context.Context, message string) {
	n.logger.WarnContext(ctx, "api call failure has no notifier", slog.String("message", message))
}

type callOptions struct {
	message   string
	indicator Indicator
	notifier  Notifier
}

// CallOption configures one Call.
type CallOption func(*callOptions)

// WithLoadingMessage replaces the default "processing" message.
func WithLoadingMessage(msg string) CallOption {
	return func(o *callOptions) { o.message = msg }
}

func WithIndicator(ind Indicator) CallOption {
	return func(o *callOptions) {
		if ind != nil {
			o.indicator = ind
		}
	}
}

// WithNotifier sets where failures are reported. Without it failures go to
// the gateway log.
func WithNotifier(n Notifier) CallOption {
	return func(o *callOptions) {
		if n != nil {
			o.notifier = n
		}
	}
}

// Call runs Do with the loading indicator shown for its duration. On
// failure the indicator is hidden, the failure is reported to the notifier
// and Call returns nil: the caller has nothing left to show.
func (g *Gateway) Call(ctx context.Context, action string, payload map[string]any, opts ...CallOption) *Result {
	o := callOptions{indicator: nopIndicator{}, notifier: logNotifier{logger: g.logger}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.message == "" {
		o.message = g.tr.Tc(ctx, "gateway.loading")
	}

	o.indicator.Show(o.message)
	hidden := false
	hide := func() {
		if !hidden {
			hidden = true
			o.indicator.Hide()
		}
	}
	defer hide()

	res, err := g.Do(ctx, action, payload)
	if err == nil {
		return res
	}

	hide()
	o.notifier.Notify(ctx, UserMessage(ctx, g.tr, err))
	return nil
}

// UserMessage renders err as the single notification shown to the user,
// e.g. "操作失敗：quota exceeded".
func UserMessage(ctx context.Context, tr *i18n.Translator, err error) string {
	if tr == nil {
		tr = i18n.Default()
	}
	return tr.Tc(ctx, "gateway.failed", "message", failureDetail(ctx, tr, err))
}

func failureDetail(ctx context.Context, tr *i18n.Translator, err error) string {
	var te *TransportError
	var ae *ApplicationError
	switch {
	case errors.As(err, &te):
		status := te.StatusText
		if status == "" {
			status = strconv.Itoa(te.StatusCode)
		}
		return tr.Tc(ctx, "gateway.server_error", "status", status)
	case errors.As(err, &ae) && ae.Message != "":
		return ae.Message
	case errors.Is(err, ErrResponseFormat):
		return tr.Tc(ctx, "gateway.bad_response")
	default:
		return tr.Tc(ctx, "gateway.unknown_error")
	}
}
