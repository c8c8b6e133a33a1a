package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language of the original Smart Kitchen UI.
const DefaultLanguage = "zh-TW"

// EmbeddedPattern matches the translation files of Embedded.
const EmbeddedPattern = "translations/*.yaml"

//go:embed translations/*.yaml
var embedded embed.FS

// Embedded returns the bundled translation files.
func Embedded() fs.FS { return embedded }

var defaultTranslator = sync.OnceValue(func() *Translator {
	t, err := NewTranslator(embedded, EmbeddedPattern)
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded translations: %v", err))
	}
	return t
})

// Default returns the translator over the embedded translations.
func Default() *Translator {
	return defaultTranslator()
}

// Translator resolves translation keys for a language.
// It is immutable after construction and safe for concurrent use.
type Translator struct {
	translations map[string]map[string]string
	defaultLang  string
	langs        []string
	matcher      language.Matcher
	logger       *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger reports missing keys at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTranslator loads every file of fsys matching pattern.
func NewTranslator(fsys fs.FS, pattern string, opts ...Option) (*Translator, error) {
	t := &Translator{
		translations: make(map[string]map[string]string),
		defaultLang:  DefaultLanguage,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		parsed, err := parseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, entries := range parsed {
			if t.translations[lang] == nil {
				t.translations[lang] = make(map[string]string, len(entries))
			}
			maps.Copy(t.translations[lang], entries)
		}
	}
	if len(t.translations) == 0 {
		return nil, ErrNoTranslations
	}
	if _, ok := t.translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageMissing, t.defaultLang)
	}

	// The matcher falls back to its first tag, so the default goes first.
	others := slices.DeleteFunc(slices.Sorted(maps.Keys(t.translations)), func(l string) bool {
		return l == t.defaultLang
	})
	t.langs = append([]string{t.defaultLang}, others...)

	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Join(ErrInvalidLanguage, err)
		}
		tags = append(tags, tag)
	}
	t.matcher = language.NewMatcher(tags)
	return t, nil
}

// Languages lists supported languages, default first.
func (t *Translator) Languages() []string {
	return slices.Clone(t.langs)
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the supported language closest to the given preferences.
// Each preference is a language tag or a full Accept-Language value.
func (t *Translator) Match(preferences ...string) string {
	var tags []language.Tag
	for _, pref := range preferences {
		if strings.TrimSpace(pref) == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(t.langs) {
		return t.defaultLang
	}
	return t.langs[idx]
}

// T translates key for lang, replacing %{name} placeholders from
// name/value pairs. Unknown languages use the default language; unknown
// keys are returned as is.
func (t *Translator) T(lang, key string, args ...string) string {
	text, ok := t.translations[lang][key]
	if !ok {
		text, ok = t.translations[t.defaultLang][key]
	}
	if !ok {
		t.logger.Debug("missing translation", "lang", lang, "key", key)
		text = key
	}
	for i := 0; i+1 < len(args); i += 2 {
		text = strings.ReplaceAll(text, "%{"+args[i]+"}", args[i+1])
	}
	return text
}

// Tc translates key for the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}
