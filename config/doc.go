// Package config resolves the confplay settings from layered sources.
//
// # Configuration Precedence
//
// Sources are loaded lowest to highest priority, with conflicts resolving
// to the higher-priority value key by key:
//
//  1. Baseline config, compiled into the binary from baseline.yaml. It is
//     complete enough for the application to run with no other source.
//  2. Runtime config file at ./configuration/settings.yaml. Not required
//     to exist, but convenient for major deviations from baseline.
//  3. Environment variables. Typically where secrets and per-deploy
//     values live. Variables are prefixed with CONFPLAY__ and nested keys
//     are joined with a double underscore:
//     somestruct.someint → CONFPLAY__SOMESTRUCT__SOMEINT
//  4. Caller overrides: a typed Overrides value and/or changed CLI flags.
//     Fields that were never set are absent from the merge, not null, so
//     they leave lower-priority values untouched.
//
// Scalars replace, nested maps merge recursively, and lists replace
// wholesale. Values from the environment stay strings in the tree;
// numeric and boolean coercion happens when the merged tree is decoded.
//
// # Errors
//
// Resolution either fully succeeds or fails with a single error chain
// wrapping the sentinel for the failing stage:
//
//	settings, err := config.Resolve(nil, cmd.Flags())
//	if errors.Is(err, config.ErrRuntimeFileParse) {
//	    // the on-disk file is broken
//	}
//
// Nothing is retried: all sources are local and deterministic, so
// retrying would not change the outcome.
package config
