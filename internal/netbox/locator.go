package netbox

import (
	"net/url"
	"strconv"
	"strings"
)

const apiPathPrefix = "/api/"

// LocatorFromURL derives a type locator from an object or endpoint URL:
//
//	https://netbox.example.com/api/dcim/devices/12/ -> dcim.devices
//	/api/ipam/ip-addresses/                         -> ipam.ip_addresses
//
// The second return value is false when the URL is not an API path.
func LocatorFromURL(raw string) (string, bool) {
	path := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		path = u.Path
	}

	idx := strings.Index(path, apiPathPrefix)
	if idx < 0 {
		return "", false
	}

	var segments []string
	for _, seg := range strings.Split(path[idx+len(apiPathPrefix):], "/") {
		if seg == "" {
			continue
		}
		if _, err := strconv.Atoi(seg); err == nil {
			continue
		}
		segments = append(segments, strings.ReplaceAll(seg, "-", "_"))
	}
	if len(segments) < 2 {
		return "", false
	}
	return strings.Join(segments, "."), true
}

// EndpointPath converts a locator to its API path relative to /api/:
// "ipam.ip_addresses" -> "ipam/ip-addresses/".
func EndpointPath(locator string) string {
	parts := strings.Split(locator, ".")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, "_", "-")
	}
	return strings.Join(parts, "/") + "/"
}
