// Package confplay holds the resolved application settings for the
// confplay utility, together with the Secret wrapper that keeps sensitive
// values out of logs and serialized output.
//
// Settings are produced once at startup by the config package, which
// layers four sources in priority order (lowest to highest):
//
//  1. Baseline config compiled into the binary
//  2. Runtime config file at ./configuration/settings.yaml (optional)
//  3. Environment variables prefixed with CONFPLAY__
//  4. Caller overrides (CLI flags in the reference use case)
//
// Higher-priority sources override matching keys from lower-priority ones,
// key by key. The result is immutable for the rest of the process.
//
// # Example Usage
//
//	settings, err := config.Resolve(nil, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(settings.Somestring)
//	fmt.Println(settings.Somesecret)          // prints the redaction marker
//	fmt.Println(settings.Somesecret.Expose()) // prints the raw value
//
// See the config package for the resolution pipeline and its stage-tagged
// errors.
package confplay
