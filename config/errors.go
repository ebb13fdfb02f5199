package config

import "errors"

// Stage-tagged resolution errors. Each failure wraps one of these
// sentinels together with its cause, so callers can identify the broken
// configuration layer with errors.Is.
var (
	// ErrBaselineParse is returned when the embedded baseline does not
	// parse. Indicates a build mistake rather than an operational one.
	ErrBaselineParse = errors.New("parse baseline config")
	// ErrRuntimeFileParse is returned when the runtime config file exists
	// but cannot be read or parsed.
	ErrRuntimeFileParse = errors.New("parse runtime config file")
	// ErrEnvironmentParse is returned when environment variables cannot
	// be bound into the settings tree.
	ErrEnvironmentParse = errors.New("bind environment variables")
	// ErrOverrideApply is returned when caller overrides cannot be
	// applied to the settings tree.
	ErrOverrideApply = errors.New("apply overrides")
	// ErrMerge is returned when the layered sources cannot be combined
	// into a single tree.
	ErrMerge = errors.New("merge config sources")
	// ErrDeserialize is returned when the merged tree does not decode
	// into Settings: a missing required field or a failed type coercion.
	ErrDeserialize = errors.New("deserialize settings")
)
