// Package render turns resources into terminal output.
//
// The table path resolves a view per resource, assembles a display Matrix
// (header row plus one row per resource) and prints it as left-justified,
// padded columns. The detail path prints each resource as field/value pairs.
// The document paths (JSON, YAML) bypass views entirely and dump every field
// of the raw resources, nested records included, in their original order.
//
// Shape problems (an empty list, mixed resource types, a matrix without data
// rows) are returned as *ShapeError before anything is written.
package render
