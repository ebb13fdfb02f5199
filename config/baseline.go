package config

import _ "embed"

// baselineYAML is the compiled-in baseline configuration. It defines a
// value for every required setting so the application can run without a
// runtime file. The file is fixed at build time; a parse failure here is
// a build mistake, not an operational condition.
//
//go:embed baseline.yaml
var baselineYAML []byte
