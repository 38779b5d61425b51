// Package diagnostic provides structured errors and warnings for the
// variant derivation pipeline.
//
// Every failure mode of the derivation is identified by a stable code:
//   - malformed-annotation
//   - conflicting-directive
//   - unknown-variant
//   - unnamed-field
//   - duplicate-variant (warning: later declaration wins)
//
// Any error diagnostic aborts the whole derivation; no partial output is
// ever written.
package diagnostic
