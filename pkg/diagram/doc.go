// Package diagram reads process diagrams: the list of parts placed on the
// grid, in JSON or TOML.
//
// # JSON Format
//
//	{
//	  "name": "mash tun",
//	  "parts": [
//	    {"x": 0, "y": 0, "type": "LiquidSource"},
//	    {"x": 1, "y": 0, "type": "ElbowTube", "rotation": 90}
//	  ]
//	}
//
// # TOML Format
//
//	name = "mash tun"
//
//	[[part]]
//	x = 0
//	y = 0
//	type = "LiquidSource"
//
// Rotation defaults to 0 and must be one of 0, 90, 180 or 270. Every part
// needs a type, and no two parts may share position, type and rotation.
// [Check] additionally resolves types against a [parts.Registry].
package diagram
