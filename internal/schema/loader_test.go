package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variantgen/internal/diagnostic"
)

const personYAML = `
version: "1"
record: Person
variants: [PersonSummary, NewPerson]
attrs:
  - attr_for(PersonSummary, "easyjson:json")
fields:
  - name: name
    type: string
  - name: age
    type: uint8
    annotations: [only_in_self, default]
  - name: created_at
    type: time.Time
    import: time
    annotations: [not_in(NewPerson)]
    default_expr: time.Now()
`

func TestParse_FullSchema(t *testing.T) {
	rec, err := Parse([]byte(personYAML))
	require.NoError(t, err)

	assert.Equal(t, "Person", rec.Name)
	assert.Equal(t, "person", rec.Package, "package defaults to snake_case record name")
	assert.Equal(t, []string{"PersonSummary", "NewPerson"}, rec.Variants)
	require.Len(t, rec.Attrs, 1)

	require.Len(t, rec.Fields, 3)
	assert.Equal(t, "name", rec.Fields[0].Name)
	assert.Empty(t, rec.Fields[0].Annotations)
	assert.Equal(t, []string{"only_in_self", "default"}, rec.Fields[1].Annotations)
	assert.Equal(t, "time", rec.Fields[2].Import)
	assert.Equal(t, "time.Now()", rec.Fields[2].DefaultExpr)
}

func TestParse_ExplicitPackageWins(t *testing.T) {
	rec, err := Parse([]byte("record: Person\npackage: people\nfields:\n  - {name: name, type: string}\n"))
	require.NoError(t, err)
	assert.Equal(t, "people", rec.Package)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("record: [unclosed"))
	assert.Error(t, err)
}

func TestValidate_OK(t *testing.T) {
	rec, err := Parse([]byte(personYAML))
	require.NoError(t, err)

	diags := Validate(rec)
	assert.False(t, diags.HasErrors())
}

func TestValidate_UnnamedField(t *testing.T) {
	rec := &Record{
		Name:   "Person",
		Fields: []FieldSpec{{Type: "string"}},
	}

	diags := Validate(rec)
	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeUnnamedField, diags.Errors[0].Code)
}

func TestValidate_DuplicateFieldName(t *testing.T) {
	rec := &Record{
		Name: "Person",
		Fields: []FieldSpec{
			{Name: "name", Type: "string"},
			{Name: "name", Type: "string"},
		},
	}

	diags := Validate(rec)
	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeMalformedAnnotation, diags.Errors[0].Code)
}

func TestValidate_GoNameCollision(t *testing.T) {
	rec := &Record{
		Name: "Person",
		Fields: []FieldSpec{
			{Name: "foo_bar", Type: "string"},
			{Name: "FooBar", Type: "int"},
		},
	}

	diags := Validate(rec)
	require.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeMalformedAnnotation, diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, `"FooBar"`)
}

func TestValidate_DuplicateNameReportedOnce(t *testing.T) {
	rec := &Record{
		Name: "Person",
		Fields: []FieldSpec{
			{Name: "name", Type: "string"},
			{Name: "name", Type: "string"},
		},
	}

	diags := Validate(rec)
	assert.Len(t, diags.Errors, 1)
}

func TestValidate_EmptyRecordName(t *testing.T) {
	diags := Validate(&Record{})
	assert.True(t, diags.HasErrors())
}

func TestFieldSpec_GoName(t *testing.T) {
	assert.Equal(t, "PublishedAt", FieldSpec{Name: "published_at"}.GoName())
	assert.Equal(t, "Name", FieldSpec{Name: "Name"}.GoName())
}
