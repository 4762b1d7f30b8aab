// Package netbox is the remote session used by nbcli commands.
//
// Responses are decoded into Records, which keep the field order of the JSON
// document, turn nested objects into nested Records and know their type
// locator ("dcim.devices"). Records satisfy view.Resource, so they can be
// handed to the rendering pipeline unchanged.
//
// Client talks to the REST API over HTTP. It authenticates with an API token,
// follows pagination links and tags every request with an X-Request-ID.
package netbox
