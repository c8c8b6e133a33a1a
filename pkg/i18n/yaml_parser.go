package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML turns one translation file into language -> key -> text.
func parseYAML(content []byte) (map[string]map[string]string, error) {
	var data map[string]map[string]string
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	for lang, entries := range data {
		if len(entries) == 0 {
			return nil, fmt.Errorf("%w: language %q has no entries", ErrFailedToParseYAML, lang)
		}
	}
	return data, nil
}
