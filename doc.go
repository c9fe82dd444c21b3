// Package tui sizes and arranges terminal UI widgets.
//
// Users import this single package for the complete public API: size
// policies, linear layouts, the reference Element leaf, events and the
// dispatcher that delivers them.
//
// A LinearLayout shares its interior along one axis between its children
// according to their size policies. Layouts react to events rather than
// method calls, so every change is applied in the order it was posted and
// a layout never solves while another solve is running:
//
//	d, _ := tui.NewDispatcher()
//	root := tui.NewRow(tui.WithDispatcher(d), tui.WithChildren(
//		tui.NewElement(tui.WithText("name"), tui.WithWidth(tui.FixedPolicy(12))),
//		tui.NewElement(tui.WithWidth(tui.ExpandingPolicy(0))),
//	))
//	d.Send(root, tui.ResizeEvent{Size: tui.Size{Width: 80, Height: 1}})
package tui
