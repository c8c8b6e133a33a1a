package i18n

import "errors"

var (
	ErrNoTranslations         = errors.New("i18n: no translations found")
	ErrFailedToParseYAML      = errors.New("i18n: failed to parse yaml translations")
	ErrInvalidLanguage        = errors.New("i18n: invalid language tag")
	ErrDefaultLanguageMissing = errors.New("i18n: default language has no translations")
)
