// Package scene loads widget trees described in YAML and builds them into
// dimsync widgets.
//
// A document names a root node, optional link groups and the frame to lay
// the tree out in:
//
//	width: 80
//	height: 24
//	groups:
//	  names: {axis: horizontal}
//	root:
//	  column:
//	    - participant: {key: 1, axis: horizontal, child: {label: "a"}}
//	    - linked: {group: names, child: {label: "bbb"}}
//
// Nodes with a name are reported after layout.
package scene
