// Package parts describes the part types that can be placed on a process
// diagram and the registries that resolve them by name.
//
// A [Type] carries the part's routing table in its own (unrotated) frame and
// whether it originates flow. A [Registry] resolves type names; [Catalog] is
// the standard in-memory implementation and [Builtin] returns the catalog
// shipped with pipegrid.
//
// # TOML Catalogs
//
// Additional types are loaded from TOML with [LoadCatalog] or [ReadCatalog]:
//
//	[[type]]
//	name = "HeatExchanger"
//	source = false
//
//	  [[type.route]]
//	  in = 270
//	  exits = [{ out = 90, friction = 4.0 }]
//
//	  [[type.route]]
//	  in = 90
//	  exits = [{ out = 270, friction = 4.0 }]
//
// A fixed-pressure exit adds a pressure key: { out = 90, friction = 1.0, pressure = 0.0 }.
// Types loaded later replace types of the same name, so a user catalog can
// override a built-in definition.
package parts
