// Package layout implements the sizing and arrangement engine for linear
// terminal UI containers.
//
// Each widget carries one [Policy] per axis. [Solve] shares a container's
// primary-axis length among its children, [CrossSize] sizes each child on the
// secondary axis, and [Arrange] turns the resulting lengths into rectangles.
// Types are re-exported through the root tui package for public consumption.
//
// The package never holds widget references: callers pass plain [Item] values
// and apply the results after each call returns.
package layout
