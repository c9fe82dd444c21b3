// Package tree loads widget trees described in YAML and builds them into
// layouts, so the command line tools can solve a layout without Go code.
//
// A node with a direction or with children becomes a LinearLayout. Any other
// node becomes an Element. Policy fields that are left out take the canonical
// values for the kind.
package tree
