package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"nbcli/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deviceWithSite() *testResource {
	return &testResource{
		locator: "dcim.devices",
		fields: []view.Field{
			{Name: "id", Value: 12},
			{Name: "name", Value: "sw1"},
			{Name: "site", Value: site(1, "dc1")},
			{Name: "tags", Value: []any{"a", "b"}},
			{Name: "rack", Value: nil},
		},
	}
}

func TestWriteJSON_Single(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, view.Resource(deviceWithSite())))

	want := `{
    "id": 12,
    "name": "sw1",
    "site": {
        "id": 1,
        "name": "dc1",
        "status": "active"
    },
    "tags": [
        "a",
        "b"
    ],
    "rack": null
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON_List(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []view.Resource{tag("core"), tag("edge")}))
	assert.JSONEq(t, `[{"name":"core","color":"ff0000"},{"name":"edge","color":"ff0000"}]`, buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, []view.Resource{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, view.Resource(deviceWithSite())))

	want := `id: 12
name: sw1
site:
    id: 1
    name: dc1
    status: active
tags:
    - a
    - b
rack: null
`
	assert.Equal(t, want, buf.String())
}

func numericResource() *testResource {
	return &testResource{
		locator: "dcim.racks",
		fields: []view.Field{
			{Name: "id", Value: json.Number("1")},
			{Name: "weight", Value: json.Number("1.0")},
			{Name: "big", Value: json.Number("12345678901234567890")},
			{Name: "precise", Value: json.Number("0.10000000000000000555")},
			{Name: "exp", Value: json.Number("1e-7")},
		},
	}
}

func TestWriteJSON_NumbersUnchanged(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, view.Resource(numericResource())))

	want := `{
    "id": 1,
    "weight": 1.0,
    "big": 12345678901234567890,
    "precise": 0.10000000000000000555,
    "exp": 1e-7
}
`
	assert.Equal(t, want, buf.String())

	bad := &testResource{fields: []view.Field{{Name: "n", Value: json.Number("1x")}}}
	assert.Error(t, WriteJSON(&buf, view.Resource(bad)))
}

func TestWriteYAML_NumbersUnchanged(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, view.Resource(numericResource())))

	want := "id: 1\nweight: 1.0\nbig: 12345678901234567890\nprecise: 0.10000000000000000555\nexp: 1e-7\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteDetail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDetail(&buf, []view.Resource{tag("core"), tag("edge")}, nil, true))

	want := "Field  Value   \n" +
		"name   core    \n" +
		"color  ff0000  \n" +
		"\n" +
		"Field  Value   \n" +
		"name   edge    \n" +
		"color  ff0000  \n"
	assert.Equal(t, want, buf.String())
}

func TestWriteDetail_ColumnsNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDetail(&buf, view.Resource(deviceWithSite()), []string{"name", "site.name"}, false))
	assert.Equal(t, "name       sw1  \nsite.name  dc1  \n", buf.String())
}

func TestWriteDetail_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteDetail(&buf, []view.Resource{}, nil, true), ErrEmptyResult)
	assert.ErrorIs(t, WriteDetail(&buf, 42, nil, true), ErrUnsupportedResult)
	assert.ErrorIs(t, WriteDetail(&buf, view.Resource(&testResource{}), nil, true), ErrNoDataRows)
	assert.Empty(t, buf.String())
}

func TestPrinter_Print(t *testing.T) {
	list := []view.Resource{site(1, "dc1"), site(2, "dc2")}

	t.Run("table with columns", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(nil, Options{Kind: ViewTable, Columns: []string{"Name", "Status"}})
		require.NoError(t, p.Print(&buf, list))
		assert.Equal(t, "Name  Status  \ndc1   active  \ndc2   active  \n", buf.String())
	})

	t.Run("table without header", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(view.Default(), Options{Columns: []string{"Name"}, NoHeader: true})
		require.NoError(t, p.Print(&buf, list))
		assert.Equal(t, "dc1  \ndc2  \n", buf.String())
	})

	t.Run("json bypasses views", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(nil, Options{Kind: ViewJSON, Columns: []string{"Name"}})
		require.NoError(t, p.Print(&buf, list))
		assert.Contains(t, buf.String(), `"status": "active"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(nil, Options{Kind: ViewYAML})
		require.NoError(t, p.Print(&buf, view.Resource(tag("core"))))
		assert.Equal(t, "name: core\ncolor: ff0000\n", buf.String())
	})

	t.Run("shape error writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(nil, Options{})
		assert.ErrorIs(t, p.Print(&buf, []view.Resource{}), ErrEmptyResult)
		assert.Empty(t, buf.String())
	})

	assert.Equal(t, ViewYAML, NewPrinter(nil, Options{Kind: ViewYAML}).Options().Kind)
}
