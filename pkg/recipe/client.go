// Package recipe looks up the daily recipe of a user by identifier.
package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/19990921ck-dev/food/pkg/logger"
)

// Ingredient is one line of the shopping list.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

type Recipe struct {
	DishName     string       `json:"dishName"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
}

// DailyRecipe is the recipe recommended to a user for a date.
type DailyRecipe struct {
	Date   string `json:"date"`
	Recipe Recipe `json:"recipe"`
}

// reply is the union of the success and error shapes.
type reply struct {
	Error string `json:"error"`
	DailyRecipe
}

// Client queries the lookup endpoint.
type Client struct {
	endpoint *url.URL
	client   *http.Client
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.client = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Join(ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}
	c := &Client{
		endpoint: u,
		client:   &http.Client{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Lookup fetches the daily recipe for idName. Surrounding blanks are
// ignored; a blank identifier is rejected without a request.
func (c *Client) Lookup(ctx context.Context, idName string) (DailyRecipe, error) {
	idName = strings.TrimSpace(idName)
	if idName == "" {
		return DailyRecipe{}, ErrEmptyIDName
	}

	u := *c.endpoint
	q := u.Query()
	q.Set("idname", idName)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return DailyRecipe{}, errors.Join(ErrLookup, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "recipe lookup failed", logger.User(idName), logger.Error(err))
		return DailyRecipe{}, errors.Join(ErrLookup, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return DailyRecipe{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var r reply
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return DailyRecipe{}, errors.Join(ErrLookup, ErrResponseFormat, err)
	}
	if r.Error != "" {
		return DailyRecipe{}, &BackendError{Message: r.Error}
	}
	return r.DailyRecipe, nil
}
