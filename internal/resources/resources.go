// Package resources maps the model aliases typed on the command line to API
// type locators.
package resources

import (
	"sort"
	"strings"
)

// Resource describes one supported model.
type Resource struct {
	// Alias is the name used on the command line, e.g. "device".
	Alias string
	// Locator is the API type locator, e.g. "dcim.devices".
	Locator string
	// Lookup is the field a bare positional term is matched against.
	Lookup string
}

// Path returns the locator as an endpoint path: "ipam/ip-addresses".
func (r Resource) Path() string {
	return strings.ReplaceAll(strings.ReplaceAll(r.Locator, ".", "/"), "_", "-")
}

var builtin = []Resource{
	{"aggregate", "ipam.aggregates", "prefix"},
	{"cable", "dcim.cables", "label"},
	{"circuit", "circuits.circuits", "cid"},
	{"circuit-type", "circuits.circuit_types", "name"},
	{"cluster", "virtualization.clusters", "name"},
	{"device", "dcim.devices", "name"},
	{"device-role", "dcim.device_roles", "name"},
	{"device-type", "dcim.device_types", "model"},
	{"interface", "dcim.interfaces", "name"},
	{"ip", "ipam.ip_addresses", "address"},
	{"location", "dcim.locations", "name"},
	{"manufacturer", "dcim.manufacturers", "name"},
	{"platform", "dcim.platforms", "name"},
	{"prefix", "ipam.prefixes", "prefix"},
	{"provider", "circuits.providers", "name"},
	{"rack", "dcim.racks", "name"},
	{"region", "dcim.regions", "name"},
	{"site", "dcim.sites", "name"},
	{"tag", "extras.tags", "name"},
	{"tenant", "tenancy.tenants", "name"},
	{"vlan", "ipam.vlans", "name"},
	{"vm", "virtualization.virtual_machines", "name"},
	{"vrf", "ipam.vrfs", "name"},
}

// Registry is a read-only alias table.
type Registry struct {
	byAlias   map[string]Resource
	byLocator map[string]Resource
	sorted    []Resource
}

// NewRegistry indexes resources. Later entries replace earlier ones with the
// same alias.
func NewRegistry(resources ...Resource) *Registry {
	reg := &Registry{
		byAlias:   make(map[string]Resource, len(resources)),
		byLocator: make(map[string]Resource, len(resources)),
	}
	for _, r := range resources {
		reg.byAlias[r.Alias] = r
		reg.byLocator[r.Locator] = r
	}
	for _, r := range reg.byAlias {
		reg.sorted = append(reg.sorted, r)
	}
	sort.Slice(reg.sorted, func(i, j int) bool { return reg.sorted[i].Alias < reg.sorted[j].Alias })
	return reg
}

var defaultRegistry = NewRegistry(builtin...)

// Default returns the built-in alias table.
func Default() *Registry {
	return defaultRegistry
}

// Get finds a resource by alias, or by locator ("dcim.devices") or endpoint
// path ("dcim/devices").
func (reg *Registry) Get(name string) (Resource, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if r, ok := reg.byAlias[name]; ok {
		return r, true
	}
	locator := strings.ReplaceAll(strings.ReplaceAll(strings.Trim(name, "/"), "/", "."), "-", "_")
	r, ok := reg.byLocator[locator]
	return r, ok
}

// All returns every resource sorted by alias.
func (reg *Registry) All() []Resource {
	return append([]Resource(nil), reg.sorted...)
}

// Aliases returns every alias in sorted order.
func (reg *Registry) Aliases() []string {
	aliases := make([]string, len(reg.sorted))
	for i, r := range reg.sorted {
		aliases[i] = r.Alias
	}
	return aliases
}
