package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sagarc03/confplay"
)

// printSettings writes the resolved settings to w, as aligned key/value
// lines or as JSON. The secret value is shown as its redaction marker
// unless reveal is set.
func printSettings(w io.Writer, s *confplay.Settings, asJSON, reveal bool) error {
	secret := s.Somesecret.String()
	if reveal {
		secret = s.Somesecret.Expose()
	}

	if asJSON {
		view := map[string]any{
			"somebool":   s.Somebool,
			"somestring": s.Somestring,
			"somesecret": secret,
			"somestruct": map[string]any{"someint": s.Somestruct.Someint},
		}
		if s.Someoptionalstring != nil {
			view["someoptionalstring"] = *s.Someoptionalstring
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	optional := "(unset)"
	if s.Someoptionalstring != nil {
		optional = *s.Someoptionalstring
	}

	_, _ = fmt.Fprintf(w, "somebool:            %v\n", s.Somebool)
	_, _ = fmt.Fprintf(w, "somestring:          %s\n", s.Somestring)
	_, _ = fmt.Fprintf(w, "somesecret:          %s\n", secret)
	_, _ = fmt.Fprintf(w, "somestruct.someint:  %d\n", s.Somestruct.Someint)
	_, _ = fmt.Fprintf(w, "someoptionalstring:  %s\n", optional)
	return nil
}
