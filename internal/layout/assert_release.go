//go:build !tuidebug

package layout

const debugAssertions = false
