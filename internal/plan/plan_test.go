package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variantgen/internal/diagnostic"
	"variantgen/internal/registry"
	"variantgen/internal/schema"
)

func build(t *testing.T, rec *schema.Record) (*registry.Registry, *DerivationPlan) {
	t.Helper()

	reg, diags := registry.Build(rec)
	require.False(t, diags.HasErrors(), "%v", diags.Error())

	p, diags := Synthesize(rec, reg)
	require.False(t, diags.HasErrors(), "%v", diags.Error())
	require.NotNil(t, p)

	return reg, p
}

func edge(t *testing.T, p *DerivationPlan, source, target string) ConversionEdge {
	t.Helper()

	for _, e := range p.Edges {
		if e.Source.Name == source && e.Target.Name == target {
			return e
		}
	}

	t.Fatalf("no edge %s -> %s", source, target)
	return ConversionEdge{}
}

func names(fields []registry.Field) []string {
	var out []string
	for _, f := range fields {
		out = append(out, f.Spec.Name)
	}

	return out
}

func TestCompare_SelfYieldsEmptyMissing(t *testing.T) {
	reg, _ := build(t, &schema.Record{
		Name: "Person",
		Fields: []schema.FieldSpec{
			{Name: "name", Type: "string"},
			{Name: "age", Type: "uint8"},
		},
	})

	v := reg.Variant("Person")
	assert.Empty(t, Missing(v, v))
	assert.Equal(t, []string{"name", "age"}, names(Common(v, v)))
}

// Canonical Person{name, age}, variant PersonSummary, age only_in_self with
// no default: no zero-arg conversion into Person, only the parameterized
// ones taking age.
func TestSynthesize_MissingRequiredBlocksFrom(t *testing.T) {
	_, p := build(t, &schema.Record{
		Name:     "Person",
		Variants: []string{"PersonSummary"},
		Fields: []schema.FieldSpec{
			{Name: "name", Type: "string"},
			{Name: "age", Type: "uint8", Annotations: []string{"only_in_self"}},
		},
	})

	up := edge(t, p, "PersonSummary", "Person")
	assert.False(t, up.HasFrom, "age has no default")
	assert.True(t, up.HasInto)
	assert.Equal(t, []string{"age"}, names(up.Missing))
	assert.Equal(t, []string{"age"}, names(up.MissingRequired))
	assert.Empty(t, up.MissingDefault)
	assert.Equal(t, "IntoPerson", up.IntoName)
	assert.Equal(t, "IntoPersonDefaults", up.IntoDefaultsName)

	// Downward the summary needs nothing the person lacks.
	down := edge(t, p, "Person", "PersonSummary")
	assert.True(t, down.HasFrom)
	assert.False(t, down.HasInto)
	assert.Empty(t, down.Missing)
}

// Same shape with age default-flagged: the zero-arg conversion appears,
// and the parameterized pair still exists as an explicit-value escape hatch.
func TestSynthesize_DefaultEnablesFrom(t *testing.T) {
	_, p := build(t, &schema.Record{
		Name:     "Person",
		Variants: []string{"PersonSummary"},
		Fields: []schema.FieldSpec{
			{Name: "name", Type: "string"},
			{Name: "age", Type: "uint8", Annotations: []string{"only_in_self", "default"}},
		},
	})

	up := edge(t, p, "PersonSummary", "Person")
	assert.True(t, up.HasFrom)
	assert.Equal(t, "PersonFromPersonSummary", up.FromName)
	assert.True(t, up.HasInto, "explicit-value methods exist even for defaultable fields")
	assert.Equal(t, []string{"age"}, names(up.MissingDefault))
	assert.Empty(t, up.MissingRequired)
}

// not_in("Draft") on published_at: Draft drops the field going down, and
// requires it as an explicit argument coming up.
func TestSynthesize_NotIn(t *testing.T) {
	reg, p := build(t, &schema.Record{
		Name:     "Post",
		Variants: []string{"Draft"},
		Fields: []schema.FieldSpec{
			{Name: "title", Type: "string"},
			{Name: "published_at", Type: "time.Time", Import: "time", Annotations: []string{"not_in(Draft)"}},
		},
	})

	assert.Equal(t, []string{"Post"}, reg.Owners("published_at"))
	assert.Equal(t, []string{"Draft"}, reg.Absent("published_at"))

	down := edge(t, p, "Post", "Draft")
	assert.True(t, down.HasFrom)
	assert.Empty(t, down.Missing)
	assert.Equal(t, []string{"title"}, names(down.Common))

	up := edge(t, p, "Draft", "Post")
	assert.False(t, up.HasFrom)
	assert.Equal(t, []string{"published_at"}, names(up.MissingRequired))
}

// No directives at all: every pair converts with a plain copy.
func TestSynthesize_NoDirectivesAllCopies(t *testing.T) {
	_, p := build(t, &schema.Record{
		Name:     "Person",
		Variants: []string{"A", "B"},
		Fields: []schema.FieldSpec{
			{Name: "name", Type: "string"},
			{Name: "age", Type: "uint8"},
		},
	})

	require.Len(t, p.Edges, 6, "ordered pairs of three variants")
	for _, e := range p.Edges {
		assert.True(t, e.HasFrom, "%s -> %s", e.Source.Name, e.Target.Name)
		assert.False(t, e.HasInto)
		assert.Empty(t, e.Missing)
		assert.Equal(t, []string{"name", "age"}, names(e.Common))
	}
}

// Conversion totality: zero-arg exists iff every missing field defaults.
// Conversion coverage: Into methods exist iff anything is missing, with
// argument sets split exactly by the default flag, in canonical order.
func TestSynthesize_TotalityAndCoverage(t *testing.T) {
	_, p := build(t, &schema.Record{
		Name:     "Order",
		Variants: []string{"OrderSummary", "NewOrder"},
		Fields: []schema.FieldSpec{
			{Name: "id", Type: "int64", Annotations: []string{"not_in(NewOrder)", "default"}},
			{Name: "item", Type: "string"},
			{Name: "total", Type: "int", Annotations: []string{"only_in(OrderSummary)"}},
			{Name: "note", Type: "string", Annotations: []string{"only_in_self"}},
		},
	})

	for _, e := range p.Edges {
		assert.Equal(t, len(e.Missing), len(e.MissingDefault)+len(e.MissingRequired))
		assert.Equal(t, e.HasFrom, len(e.MissingRequired) == 0,
			"%s -> %s", e.Source.Name, e.Target.Name)
		assert.Equal(t, e.HasInto, len(e.Missing) > 0,
			"%s -> %s", e.Source.Name, e.Target.Name)
	}

	// NewOrder{item} -> Order{id,item,note}: id defaults, note does not,
	// and the canonical order of the argument lists holds.
	up := edge(t, p, "NewOrder", "Order")
	assert.Equal(t, []string{"id", "note"}, names(up.Missing))
	assert.Equal(t, []string{"id"}, names(up.MissingDefault))
	assert.Equal(t, []string{"note"}, names(up.MissingRequired))
	assert.False(t, up.HasFrom)

	// NewOrder{item} -> OrderSummary{id,item,total}: only_in lists are
	// intersections, so total lives in OrderSummary alone.
	side := edge(t, p, "NewOrder", "OrderSummary")
	assert.Equal(t, []string{"id", "total"}, names(side.Missing))
	assert.Equal(t, []string{"total"}, names(side.MissingRequired))
}

// Symmetry: common fields carry the same names in both directions.
func TestSynthesize_CommonSymmetry(t *testing.T) {
	_, p := build(t, &schema.Record{
		Name:     "Person",
		Variants: []string{"PersonSummary"},
		Fields: []schema.FieldSpec{
			{Name: "name", Type: "string"},
			{Name: "age", Type: "uint8", Annotations: []string{"only_in_self"}},
		},
	})

	ab := edge(t, p, "Person", "PersonSummary")
	ba := edge(t, p, "PersonSummary", "Person")
	assert.Equal(t, names(ab.Common), names(ba.Common))
}

func TestSynthesize_DefaultsNameCollision(t *testing.T) {
	reg, diags := registry.Build(&schema.Record{
		Name:     "X",
		Variants: []string{"XDefaults"},
		Fields:   []schema.FieldSpec{{Name: "name", Type: "string"}},
	})
	require.False(t, diags.HasErrors())

	p, diags := Synthesize(&schema.Record{Name: "X"}, reg)
	assert.Nil(t, p)
	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeMalformedAnnotation, diags.Errors[0].Code)
}

func TestSynthesize_EdgeOrderIsDeterministic(t *testing.T) {
	_, p := build(t, &schema.Record{
		Name:     "Person",
		Variants: []string{"A", "B"},
		Fields:   []schema.FieldSpec{{Name: "name", Type: "string"}},
	})

	var order []string
	for _, e := range p.Edges {
		order = append(order, e.Source.Name+">"+e.Target.Name)
	}

	assert.Equal(t, []string{
		"Person>A", "Person>B",
		"A>Person", "A>B",
		"B>Person", "B>A",
	}, order)
}
