package view

import (
	"strings"
	"unicode"
)

// viewSuffix is appended to every canonical view name.
const viewSuffix = "View"

// CanonicalName derives the registry name for a type locator.
// Each segment is title-cased (a letter following a non-letter is upper-cased,
// every other letter lower-cased), then the separators ".", "/" and "_" are
// dropped and "View" is appended:
//
//	dcim.devices      -> DcimDevicesView
//	ipam.ip_addresses -> IpamIpAddressesView
func CanonicalName(locator string) string {
	var b strings.Builder
	b.Grow(len(locator) + len(viewSuffix))

	prevLetter := false
	for _, r := range locator {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		prevLetter = false
		switch r {
		case '.', '/', '_':
			continue
		}
		b.WriteRune(r)
	}

	b.WriteString(viewSuffix)
	return b.String()
}
