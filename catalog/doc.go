// Package catalog holds the recipe catalog of a crafting game: buildings,
// the recipes they run, and the per-unit-time rates of recipe inputs and
// outputs.
//
// Lookup policy:
//
//	Lookup(item) returns the FIRST recipe in catalog order whose output is
//	item. Catalogs that define the same output twice get the earlier recipe;
//	Shadowed() lists the ignored ones so callers can warn about them.
//
// Validation:
//
//	Validate() rejects empty identifiers and non-positive rates, then builds
//	the first-match DependencyGraph and runs dfs.DetectCycles on it. Demand
//	resolution over a cyclic catalog would never terminate, so every loop is
//	reported as a *CycleError (errors.Is(err, ErrCycle)).
//
// Loading:
//
//	ParseJSON (tidwall/gjson), ParseYAML (gopkg.in/yaml.v3) and Load, which
//	dispatches on the file extension.
package catalog
