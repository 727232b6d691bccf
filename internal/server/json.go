package server

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// flexString accepts a JSON string or a JSON number and keeps its text.
// Clients send amounts and ids either way.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Errorf("expected string or number, got %s", b)
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string {
	return string(f)
}
