package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Mode selects which success markers Classify accepts.
type Mode string

const (
	// ModeBoth accepts {"status":"success"} and {"success":true}.
	ModeBoth Mode = "both"
	// ModeStatus accepts only {"status":"success"}.
	ModeStatus Mode = "status"
)

// ParseMode reads a configured mode; empty means ModeBoth.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeBoth, nil
	case ModeBoth, ModeStatus:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Classify parses a 2xx reply body and decides whether it reports success.
// It returns ErrResponseFormat for anything but a JSON object and an
// *ApplicationError for a failure reply.
func Classify(body []byte, mode Mode) (*Result, error) {
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Join(ErrResponseFormat, err)
	}
	if parsed == nil {
		return nil, fmt.Errorf("%w: reply is not an object", ErrResponseFormat)
	}

	if status, _ := parsed["status"].(string); status == "success" {
		return newResult(body, parsed), nil
	}
	if mode != ModeStatus {
		if ok, _ := parsed["success"].(bool); ok {
			return newResult(body, parsed), nil
		}
	}

	message, _ := parsed["message"].(string)
	return nil, &ApplicationError{Message: strings.TrimSpace(message), Body: parsed}
}
