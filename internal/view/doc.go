// Package view resolves a resource to the formatter that knows how to display it.
//
// A resource is anything that can report its type locator (a hierarchical
// schema path such as "dcim.devices") and its ordered fields. The locator is
// turned into a canonical view name ("DcimDevicesView") which is looked up in
// a Registry. Registries are populated once from an explicit list of view
// definitions and never change afterwards; a miss resolves to RecordView,
// which shows every field the resource declares.
//
// Views expose ordered Keys and Values. For a given view type the keys never
// depend on the wrapped instance, so a list of resources of one type can be
// laid out as a table with a single header row.
package view
