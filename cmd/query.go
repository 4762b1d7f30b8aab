package cmd

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"nbcli/internal/cli"
	"nbcli/internal/resources"
)

// modelQuery resolves the model named by the first positional and builds the
// API query from the remaining positionals and the key=value pairs. Extra
// positionals are matched against the model's lookup field.
func modelQuery(c *cli.Context, maxLookups int) (resources.Resource, url.Values, error) {
	if len(c.Args) == 0 {
		return resources.Resource{}, nil, cli.Usagef("a model is required; run 'nbcli info --models' to list them")
	}

	model := c.Args[0]
	res, ok := resources.Default().Get(model)
	if !ok {
		return resources.Resource{}, nil, unsupportedModel(model)
	}

	lookups := c.Args[1:]
	if maxLookups >= 0 && len(lookups) > maxLookups {
		return resources.Resource{}, nil, cli.Usagef("expected at most %d lookup value(s) for %s, got %d", maxLookups, res.Alias, len(lookups))
	}

	query := c.Query()
	for _, lookup := range lookups {
		query.Add(res.Lookup, lookup)
	}
	return res, query, nil
}

func unsupportedModel(name string) error {
	return cli.Usagef("unsupported model %q; supported models: %s", name, strings.Join(resources.Default().Aliases(), ", "))
}

// describeQuery renders query for messages: "name=edge01 site=nyc".
func describeQuery(query url.Values) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, v := range query[k] {
			parts = append(parts, fmt.Sprintf("%s=%s", k, v))
		}
	}
	return strings.Join(parts, " ")
}
