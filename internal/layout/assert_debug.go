//go:build tuidebug

package layout

// debugAssertions makes Solve panic on malformed policies.
const debugAssertions = true
