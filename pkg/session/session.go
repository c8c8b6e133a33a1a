package session

import (
	"encoding/json"
	"errors"
	"strings"
)

// Session identifies the logged-in user.
type Session struct {
	IDName      string `json:"idName"`
	DisplayName string `json:"displayName"`
}

// Valid reports whether both fields carry a value.
func (s Session) Valid() bool {
	return strings.TrimSpace(s.IDName) != "" && strings.TrimSpace(s.DisplayName) != ""
}

// record mirrors Session with pointer fields so missing keys are detectable.
type record struct {
	IDName      *string `json:"idName"`
	DisplayName *string `json:"displayName"`
}

// decode parses raw into a Session, rejecting anything but a complete record.
func decode(raw []byte) (Session, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Session{}, errors.Join(ErrCorrupt, err)
	}
	if rec.IDName == nil || rec.DisplayName == nil {
		return Session{}, ErrCorrupt
	}
	s := Session{IDName: *rec.IDName, DisplayName: *rec.DisplayName}
	if !s.Valid() {
		return Session{}, ErrCorrupt
	}
	return s, nil
}

func encode(s Session) ([]byte, error) {
	if !s.Valid() {
		return nil, ErrInvalidSession
	}
	return json.Marshal(s)
}
