package render

import (
	"bytes"
	"testing"

	"nbcli/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testResource is a minimal view.Resource.
type testResource struct {
	locator string
	fields  []view.Field
}

func (r *testResource) TypeLocator() (string, bool) { return r.locator, r.locator != "" }
func (r *testResource) Fields() []view.Field         { return r.fields }
func (r *testResource) Field(name string) (any, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
func (r *testResource) Label() string {
	v, _ := r.Field("name")
	return view.Stringify(v)
}

// otherResource has the same shape as testResource but a different Go type.
type otherResource struct{ testResource }

func site(id int, name string) *testResource {
	return &testResource{
		locator: "dcim.sites",
		fields: []view.Field{
			{Name: "id", Value: id},
			{Name: "name", Value: name},
			{Name: "status", Value: "active"},
		},
	}
}

func tag(name string) *testResource {
	return &testResource{
		locator: "extras.tags",
		fields:  []view.Field{{Name: "name", Value: name}, {Name: "color", Value: "ff0000"}},
	}
}

func TestBuildMatrix_SingleResource(t *testing.T) {
	m, err := BuildMatrix(view.Default(), view.Resource(site(1, "dc1")), nil)
	require.NoError(t, err)

	require.Len(t, m, 2)
	assert.Equal(t, len(m[0]), len(m[1]))
	assert.Equal(t, []string{"ID", "Name", "Status", "Facility", "Region", "Tenant", "Description"}, m[0])
	assert.Equal(t, []string{"1", "dc1", "active", "", "", "", ""}, m[1])
}

func TestBuildMatrix_List(t *testing.T) {
	list := []view.Resource{site(1, "dc1"), site(2, "dc2"), site(3, "dc3")}

	m, err := BuildMatrix(view.Default(), list, nil)
	require.NoError(t, err)

	require.Len(t, m, 4)
	for _, r := range m {
		assert.Len(t, r, len(m[0]))
	}
	assert.Equal(t, "dc3", m[3][1])
}

func TestBuildMatrix_FallbackView(t *testing.T) {
	m, err := BuildMatrix(view.Default(), []view.Resource{tag("core"), tag("edge")}, nil)
	require.NoError(t, err)
	assert.Equal(t, Matrix{{"name", "color"}, {"core", "ff0000"}, {"edge", "ff0000"}}, m)
}

func TestBuildMatrix_Columns(t *testing.T) {
	m, err := BuildMatrix(view.Default(), []view.Resource{site(1, "dc1")}, []string{"name", "ID", "slug"})
	require.NoError(t, err)
	assert.Equal(t, Matrix{{"name", "ID", "slug"}, {"dc1", "1", ""}}, m)
}

func TestBuildMatrix_ShapeErrors(t *testing.T) {
	tests := []struct {
		name   string
		result any
		want   error
	}{
		{"empty list", []view.Resource{}, ErrEmptyResult},
		{"mixed locators", []view.Resource{site(1, "dc1"), tag("core")}, ErrMixedTypes},
		{"mixed go types", []view.Resource{site(1, "dc1"), &otherResource{*site(2, "dc2")}}, ErrMixedTypes},
		{"nil item", []view.Resource{site(1, "dc1"), nil}, ErrUnsupportedResult},
		{"unsupported", "just a string", ErrUnsupportedResult},
		{"nil", nil, ErrUnsupportedResult},
		{"ragged fallback rows", []view.Resource{tag("core"), &testResource{locator: "extras.tags", fields: []view.Field{{Name: "name", Value: "x"}}}}, ErrRaggedMatrix},
		{"fallback rows with other fields", []view.Resource{tag("core"), renamedTag()}, ErrRaggedMatrix},
		{"fallback rows in other order", []view.Resource{tag("core"), &testResource{locator: "extras.tags", fields: []view.Field{{Name: "color", Value: "00ff00"}, {Name: "name", Value: "edge"}}}}, ErrRaggedMatrix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := BuildMatrix(view.Default(), tt.result, nil)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.want)

			var shapeErr *ShapeError
			assert.ErrorAs(t, err, &shapeErr)
		})
	}
}

func renamedTag() *testResource {
	return &testResource{
		locator: "extras.tags",
		fields:  []view.Field{{Name: "slug", Value: "edge"}, {Name: "color", Value: "00ff00"}},
	}
}

func TestBuildMatrix_ColumnOverrideAcrossFieldSets(t *testing.T) {
	m, err := BuildMatrix(view.Default(), []view.Resource{tag("core"), renamedTag()}, []string{"name", "color"})
	require.NoError(t, err)
	assert.Equal(t, Matrix{{"name", "color"}, {"core", "ff0000"}, {"", "00ff00"}}, m)
}

func TestColumnWidths(t *testing.T) {
	m := Matrix{{"Name", "Age"}, {"Al", "30"}, {"Bo", "5"}}
	assert.Equal(t, []int{6, 5}, ColumnWidths(m))
	assert.Equal(t, []int{4, 4}, ColumnWidths(m[1:]))
	assert.Nil(t, ColumnWidths(nil))
}

func TestRenderTable(t *testing.T) {
	m := Matrix{{"Name", "Age"}, {"Al", "30"}, {"Bo", "5"}}

	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, m, true))
	assert.Equal(t, "Name  Age  \nAl    30   \nBo    5    \n", buf.String())

	buf.Reset()
	require.NoError(t, RenderTable(&buf, m, false))
	assert.Equal(t, "Al  30  \nBo  5   \n", buf.String())
}

func TestRenderTable_Unicode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, Matrix{{"Site"}, {"Zürich"}}, true))
	assert.Equal(t, "Site    \nZürich  \n", buf.String())
}

func TestRenderTable_Errors(t *testing.T) {
	var buf bytes.Buffer

	err := RenderTable(&buf, Matrix{{"Name"}}, true)
	assert.ErrorIs(t, err, ErrNoDataRows)

	err = RenderTable(&buf, Matrix{}, false)
	assert.ErrorIs(t, err, ErrNoDataRows)

	err = RenderTable(&buf, Matrix{{"a", "b"}, {"1"}}, true)
	assert.ErrorIs(t, err, ErrRaggedMatrix)

	assert.Empty(t, buf.String())
}

func TestParseViewKind(t *testing.T) {
	for _, k := range ViewKinds {
		got, err := ParseViewKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseViewKind("xml")
	assert.ErrorContains(t, err, "unsupported view")

	var k ViewKind
	assert.Equal(t, "table", k.String())
	require.NoError(t, k.Set("json"))
	assert.Equal(t, ViewJSON, k)
	assert.Error(t, k.Set("csv"))
	assert.Equal(t, "view", k.Type())
}
