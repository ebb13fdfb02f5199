package config

// Overrides carries caller-supplied settings, typically sourced from CLI
// flags or invocation parameters. Nil fields are excluded from the merge
// entirely, so they never shadow a value from a lower-priority source.
// Set fields win over every other source.
type Overrides struct {
	Somestring         *string
	Someoptionalstring *string
}

// values returns the dotted-key contribution of the set fields.
func (o *Overrides) values() map[string]any {
	m := make(map[string]any)
	if o == nil {
		return m
	}
	if o.Somestring != nil {
		m["somestring"] = *o.Somestring
	}
	if o.Someoptionalstring != nil {
		m["someoptionalstring"] = *o.Someoptionalstring
	}
	return m
}
