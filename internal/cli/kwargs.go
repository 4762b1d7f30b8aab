package cli

import (
	"net/url"
	"sort"
	"strings"
)

// KWValue is the value bound to one keyword. It holds a single value until the
// keyword is repeated, after which it is an ordered list.
type KWValue struct {
	values []string
}

// IsList reports whether the keyword was given more than once.
func (v KWValue) IsList() bool {
	return len(v.values) > 1
}

// String returns the scalar value, or the list values joined with ",".
func (v KWValue) String() string {
	return strings.Join(v.values, ",")
}

// Values returns a copy of every value in the order given.
func (v KWValue) Values() []string {
	return append([]string(nil), v.values...)
}

// Interface returns a string for a scalar and a []string for a list.
func (v KWValue) Interface() any {
	if v.IsList() {
		return v.Values()
	}
	if len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

// KWArgsResult is the outcome of ParseKWArgs.
type KWArgsResult struct {
	// Args holds the positional tokens, verbatim and in order.
	Args []string
	// KWArgs holds the keyword tokens grouped by key.
	KWArgs map[string]KWValue
}

// ParseKWArgs splits tokens into positionals and key=value pairs.
//
// A token is a keyword pair when it contains "=" somewhere after its first
// character; it is split on the first "=" only, so "a=b=c" binds "b=c" to
// "a". Every other token, including "=x", is positional. A repeated key turns
// its value into a list that keeps the order of appearance. Parsing never
// fails.
func ParseKWArgs(tokens []string) KWArgsResult {
	result := KWArgsResult{
		Args:   []string{},
		KWArgs: map[string]KWValue{},
	}
	for _, token := range tokens {
		if strings.Index(token, "=") <= 0 {
			result.Args = append(result.Args, token)
			continue
		}
		key, value, _ := strings.Cut(token, "=")
		current := result.KWArgs[key]
		current.values = append(current.values, value)
		result.KWArgs[key] = current
	}
	return result
}

// Keys returns the keyword names in sorted order.
func (r KWArgsResult) Keys() []string {
	keys := make([]string, 0, len(r.KWArgs))
	for k := range r.KWArgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Query encodes the keyword pairs as URL query parameters. A list keyword
// contributes one parameter per value.
func (r KWArgsResult) Query() url.Values {
	q := url.Values{}
	for key, value := range r.KWArgs {
		for _, v := range value.values {
			q.Add(key, v)
		}
	}
	return q
}
