package view

// builtinViews lists the curated views shipped with nbcli.
// Names must match CanonicalName of the locator they handle.
func builtinViews() []Definition {
	return []Definition{
		Columns("CircuitsCircuitsView",
			Column{"ID", "id"},
			Column{"Circuit ID", "cid"},
			Column{"Provider", "provider"},
			Column{"Type", "type"},
			Column{"Status", "status"},
			Column{"Tenant", "tenant"},
			Column{"Description", "description"},
		),
		Columns("DcimDevicesView",
			Column{"ID", "id"},
			Column{"Name", "name"},
			Column{"Status", "status"},
			Column{"Tenant", "tenant"},
			Column{"Site", "site"},
			Column{"Rack", "rack"},
			Column{"Role", "role"},
			Column{"Type", "device_type"},
			Column{"IP Address", "primary_ip"},
		),
		Columns("DcimInterfacesView",
			Column{"ID", "id"},
			Column{"Device", "device"},
			Column{"Name", "name"},
			Column{"Type", "type"},
			Column{"Enabled", "enabled"},
			Column{"MTU", "mtu"},
			Column{"MAC Address", "mac_address"},
			Column{"Description", "description"},
		),
		Columns("DcimRacksView",
			Column{"ID", "id"},
			Column{"Name", "name"},
			Column{"Site", "site"},
			Column{"Location", "location"},
			Column{"Status", "status"},
			Column{"Role", "role"},
			Column{"Tenant", "tenant"},
			Column{"Height", "u_height"},
		),
		Columns("DcimSitesView",
			Column{"ID", "id"},
			Column{"Name", "name"},
			Column{"Status", "status"},
			Column{"Facility", "facility"},
			Column{"Region", "region"},
			Column{"Tenant", "tenant"},
			Column{"Description", "description"},
		),
		Columns("IpamIpAddressesView",
			Column{"ID", "id"},
			Column{"IP Address", "address"},
			Column{"VRF", "vrf"},
			Column{"Status", "status"},
			Column{"Role", "role"},
			Column{"Tenant", "tenant"},
			Column{"Assigned", "assigned_object"},
			Column{"DNS Name", "dns_name"},
		),
		Columns("IpamPrefixesView",
			Column{"ID", "id"},
			Column{"Prefix", "prefix"},
			Column{"Status", "status"},
			Column{"VRF", "vrf"},
			Column{"VLAN", "vlan"},
			Column{"Tenant", "tenant"},
			Column{"Role", "role"},
			Column{"Description", "description"},
		),
		Columns("IpamVlansView",
			Column{"ID", "id"},
			Column{"VID", "vid"},
			Column{"Name", "name"},
			Column{"Site", "site"},
			Column{"Group", "group"},
			Column{"Status", "status"},
			Column{"Tenant", "tenant"},
			Column{"Role", "role"},
		),
		Columns("IpamVrfsView",
			Column{"ID", "id"},
			Column{"Name", "name"},
			Column{"RD", "rd"},
			Column{"Tenant", "tenant"},
			Column{"Description", "description"},
		),
		Columns("TenancyTenantsView",
			Column{"ID", "id"},
			Column{"Name", "name"},
			Column{"Slug", "slug"},
			Column{"Group", "group"},
			Column{"Description", "description"},
		),
		Columns("VirtualizationVirtualMachinesView",
			Column{"ID", "id"},
			Column{"Name", "name"},
			Column{"Status", "status"},
			Column{"Cluster", "cluster"},
			Column{"Role", "role"},
			Column{"Tenant", "tenant"},
			Column{"vCPUs", "vcpus"},
			Column{"Memory (MB)", "memory"},
			Column{"IP Address", "primary_ip"},
		),
	}
}
