package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/19990921ck-dev/food/pkg/i18n"
	"github.com/19990921ck-dev/food/pkg/logger"
)

// ContentType is declared on every request. The backend reads the body as
// plain text to avoid a CORS preflight.
const ContentType = "text/plain;charset=utf-8"

// maxDrainSize bounds how much of a failed reply is read before the
// connection is reused.
const maxDrainSize = 1 << 20

// Gateway posts actions to the backend endpoint.
type Gateway struct {
	endpoint string
	client   *http.Client
	mode     Mode
	tr       *i18n.Translator
	logger   *slog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the default client, e.g. for tests or proxies.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		if c != nil {
			g.client = c
		}
	}
}

// WithMode sets the accepted success markers. Default is ModeBoth.
func WithMode(m Mode) Option {
	return func(g *Gateway) {
		if m != "" {
			g.mode = m
		}
	}
}

func WithTranslator(tr *i18n.Translator) Option {
	return func(g *Gateway) {
		if tr != nil {
			g.tr = tr
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Gateway for an http or https endpoint. The default client
// has no timeout: a call runs until the backend replies or ctx is done.
func New(endpoint string, opts ...Option) (*Gateway, error) {
	if err := validateEndpoint(endpoint); err != nil {
		return nil, err
	}
	g := &Gateway{
		endpoint: endpoint,
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		mode:   ModeBoth,
		tr:     i18n.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidEndpoint)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.Join(ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidEndpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidEndpoint)
	}
	return nil
}

// Endpoint returns the backend URL.
func (g *Gateway) Endpoint() string { return g.endpoint }

// Mode returns the accepted success markers.
func (g *Gateway) Mode() Mode { return g.mode }

// Do posts action with payload and returns the classified reply. It has no
// UI side effects. There are no retries.
func (g *Gateway) Do(ctx context.Context, action string, payload map[string]any) (*Result, error) {
	log := g.logger.With(logger.CallID(uuid.NewString()), logger.Action(action))
	start := time.Now()

	res, err := g.do(ctx, action, payload)
	if err != nil {
		log.WarnContext(ctx, "api call failed", logger.Error(err), slog.Duration("took", time.Since(start)))
		return nil, err
	}
	log.DebugContext(ctx, "api call succeeded", slog.Duration("took", time.Since(start)))
	return res, nil
}

func (g *Gateway) do(ctx context.Context, action string, payload map[string]any) (*Result, error) {
	body, err := EncodeBody(action, payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainSize))
		return nil, &TransportError{StatusCode: resp.StatusCode, StatusText: statusText(resp)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	return Classify(raw, g.mode)
}

// EncodeBody builds the request body: payload merged with the action.
// The action always wins over a payload key of the same name.
func EncodeBody(action string, payload map[string]any) ([]byte, error) {
	if strings.TrimSpace(action) == "" {
		return nil, ErrInvalidAction
	}
	merged := make(map[string]any, len(payload)+1)
	maps.Copy(merged, payload)
	merged["action"] = action
	body, err := json.Marshal(merged)
	if err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	return body, nil
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
