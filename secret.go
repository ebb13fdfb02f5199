package confplay

import (
	"encoding/json"
	"log/slog"
)

// Redacted is printed in place of secret values.
const Redacted = "[REDACTED]"

// Secret holds a sensitive string value. Its fmt, JSON, YAML, and slog
// representations are all Redacted; the raw value is only reachable
// through Expose.
type Secret struct {
	value string
}

// NewSecret wraps a raw value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Expose returns the raw secret value.
func (s Secret) Expose() string {
	return s.value
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	return Redacted
}

// GoString implements fmt.GoStringer so %#v does not leak the value.
func (s Secret) GoString() string {
	return "confplay.Secret(" + Redacted + ")"
}

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(Redacted)
}

// MarshalYAML implements yaml.Marshaler.
func (s Secret) MarshalYAML() (any, error) {
	return Redacted, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config decoding
// produces a Secret from a plain string.
func (s *Secret) UnmarshalText(text []byte) error {
	s.value = string(text)
	return nil
}
