package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/19990921ck-dev/food/pkg/i18n"
)

func TestDefault(t *testing.T) {
	tr := i18n.Default()

	assert.Equal(t, "zh-TW", tr.DefaultLanguage())
	assert.Equal(t, []string{"zh-TW", "en"}, tr.Languages())
	assert.Equal(t, "尚未登入", tr.T("zh-TW", "header.anonymous"))
	assert.Equal(t, "Not logged in", tr.T("en", "header.anonymous"))
}

func TestTranslator_T(t *testing.T) {
	tr := i18n.Default()

	t.Run("placeholders", func(t *testing.T) {
		assert.Equal(t, "Operation failed: quota exceeded", tr.T("en", "gateway.failed", "message", "quota exceeded"))
		assert.Equal(t, "操作失敗：quota exceeded", tr.T("zh-TW", "gateway.failed", "message", "quota exceeded"))
	})

	t.Run("unknown language falls back to default", func(t *testing.T) {
		assert.Equal(t, "登出", tr.T("fr", "nav.logout"))
		assert.Equal(t, "登出", tr.T("", "nav.logout"))
	})

	t.Run("unknown key is returned", func(t *testing.T) {
		assert.Equal(t, "no.such.key", tr.T("en", "no.such.key"))
	})

	t.Run("context locale", func(t *testing.T) {
		ctx := i18n.SetLocale(context.Background(), "en")
		assert.Equal(t, "Log out", tr.Tc(ctx, "nav.logout"))
		assert.Equal(t, "登出", tr.Tc(context.Background(), "nav.logout"))
	})
}

func TestTranslator_Match(t *testing.T) {
	tr := i18n.Default()

	tests := []struct {
		name  string
		prefs []string
		want  string
	}{
		{name: "no preference", prefs: nil, want: "zh-TW"},
		{name: "exact", prefs: []string{"en"}, want: "en"},
		{name: "regional variant", prefs: []string{"en-GB"}, want: "en"},
		{name: "accept-language header", prefs: []string{"fr-FR,fr;q=0.9,en;q=0.8"}, want: "en"},
		{name: "traditional chinese", prefs: []string{"zh-TW,zh;q=0.9"}, want: "zh-TW"},
		{name: "unsupported", prefs: []string{"fr"}, want: "zh-TW"},
		{name: "garbage", prefs: []string{"!!!"}, want: "zh-TW"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.prefs...))
		})
	}
}

func TestNewTranslator(t *testing.T) {
	t.Run("custom default", func(t *testing.T) {
		fsys := fstest.MapFS{
			"a.yaml": {Data: []byte("en:\n  hello: Hello\n")},
			"b.yaml": {Data: []byte("de:\n  hello: Hallo\n")},
		}
		tr, err := i18n.NewTranslator(fsys, "*.yaml", i18n.WithDefaultLanguage("en"))
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "de"}, tr.Languages())
		assert.Equal(t, "Hallo", tr.T("de", "hello"))
	})

	t.Run("default language missing", func(t *testing.T) {
		fsys := fstest.MapFS{"a.yaml": {Data: []byte("en:\n  hello: Hello\n")}}
		_, err := i18n.NewTranslator(fsys, "*.yaml")
		assert.ErrorIs(t, err, i18n.ErrDefaultLanguageMissing)
	})

	t.Run("no files", func(t *testing.T) {
		_, err := i18n.NewTranslator(fstest.MapFS{}, "*.yaml")
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("broken yaml", func(t *testing.T) {
		fsys := fstest.MapFS{"a.yaml": {Data: []byte("zh-TW: [")}}
		_, err := i18n.NewTranslator(fsys, "*.yaml")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})
}

func TestMiddleware(t *testing.T) {
	var got string
	h := i18n.Middleware(i18n.Default(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "en-US,en;q=0.9")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "en", got)

	r = httptest.NewRequest(http.MethodGet, "/?lang=zh-TW", nil)
	r.Header.Set("Accept-Language", "en-US")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "zh-TW", got)
}
