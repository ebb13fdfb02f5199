package confplay

// Settings is the fully resolved application configuration. It is built
// once by config.Resolve and not mutated afterwards.
type Settings struct {
	Somebool   bool               `mapstructure:"somebool" json:"somebool" yaml:"somebool"`
	Somestring string             `mapstructure:"somestring" json:"somestring" yaml:"somestring" validate:"required"`
	Somesecret Secret             `mapstructure:"somesecret" json:"somesecret" yaml:"somesecret" validate:"required"`
	Somestruct SomeStructSettings `mapstructure:"somestruct" json:"somestruct" yaml:"somestruct"`

	// Someoptionalstring is nil when no source supplies a value.
	Someoptionalstring *string `mapstructure:"someoptionalstring" json:"someoptionalstring,omitempty" yaml:"someoptionalstring,omitempty"`
}

// SomeStructSettings is the nested sub-record of Settings.
type SomeStructSettings struct {
	// Someint may arrive as a quoted string from the environment layer;
	// coercion happens when the merged tree is decoded.
	Someint uint64 `mapstructure:"someint" json:"someint" yaml:"someint"`
}
