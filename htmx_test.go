package food_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/19990921ck-dev/food"
)

func TestTriggers(t *testing.T) {
	t.Run("empty writes nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, food.Triggers{}.Write(rec))
		assert.Empty(t, rec.Header().Get(food.HXTrigger))
	})

	t.Run("notify and switch", func(t *testing.T) {
		tr := food.Triggers{}
		tr.Notify("first", "second")
		tr.SwitchView("style-page")
		rec := httptest.NewRecorder()
		require.NoError(t, tr.Write(rec))

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(rec.Header().Get(food.HXTrigger)), &got))
		assert.Equal(t, "style-page", got[food.EventSwitchView])
		notify := got[food.EventNotify].(map[string]any)
		assert.Equal(t, "second", notify["message"])
		assert.Equal(t, []any{"first", "second"}, notify["messages"])
	})
}

func TestHTMXRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/ui/click/x", nil)
	assert.False(t, food.IsHTMX(r))

	r.Header.Set(food.HXRequest, "true")
	r.Header.Set(food.HXCurrentURL, "https://example.com/food/login.html")
	assert.True(t, food.IsHTMX(r))
	assert.Equal(t, "https://example.com/food/login.html", food.GetHTMXCurrentURL(r))

	rec := httptest.NewRecorder()
	food.HTMXRedirect(rec, "/food/login.html")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/food/login.html", rec.Header().Get(food.HXRedirect))
}

func TestIsDataStar(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(r *http.Request)
		target string
		want   bool
	}{
		{name: "plain", target: "/", want: false},
		{name: "accept header", target: "/", setup: func(r *http.Request) { r.Header.Set("Accept", "text/event-stream") }, want: true},
		{name: "query param", target: "/?datastar=%7B%7D", want: true},
		{name: "content type", target: "/", setup: func(r *http.Request) { r.Header.Set("Content-Type", "application/x-datastar") }, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.setup != nil {
				tt.setup(r)
			}
			assert.Equal(t, tt.want, food.IsDataStar(r))
		})
	}
}

func TestDataStarRedirect(t *testing.T) {
	t.Run("plain request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		require.NoError(t, food.DataStarRedirect(rec, r, "/food/login.html", http.StatusSeeOther))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/food/login.html", rec.Header().Get("Location"))
	})

	t.Run("datastar request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("Accept", "text/event-stream")
		require.NoError(t, food.DataStarRedirect(rec, r, "/food/login.html", http.StatusSeeOther))
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, rec.Body.String(), "/food/login.html")
	})
}
