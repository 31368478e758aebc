package identity

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindrename/internal/diagnostic"
)

// step is one discovery event delivered to a registry.
type step struct {
	label string
	apply func(r *Registry)
}

func composite(id ItemID, kind CompositeKind, original, host string) step {
	return step{
		label: fmt.Sprintf("composite(%d,%s,%q,%q)", id, kind, original, host),
		apply: func(r *Registry) { r.OnCompositeFound(id, kind, original, host) },
	}
}

func alias(name string, target ItemID) step {
	return step{
		label: fmt.Sprintf("alias(%q->%d)", name, target),
		apply: func(r *Registry) { r.OnAliasFound(name, target) },
	}
}

func replay(steps ...step) *Registry {
	r := NewRegistry(nil)
	for _, s := range steps {
		s.apply(r)
	}

	return r
}

// snapshot copies the mappings so registries can be compared by value.
func snapshot(r *Registry) map[ItemID]NameMapping {
	out := make(map[ItemID]NameMapping, r.Len())
	for _, id := range r.IDs() {
		m, _ := r.Lookup(id)
		out[id] = *m
	}

	return out
}

func permutations(steps []step) [][]step {
	if len(steps) <= 1 {
		return [][]step{append([]step(nil), steps...)}
	}

	var out [][]step
	for i := range steps {
		rest := make([]step, 0, len(steps)-1)
		rest = append(rest, steps[:i]...)
		rest = append(rest, steps[i+1:]...)

		for _, p := range permutations(rest) {
			out = append(out, append([]step{steps[i]}, p...))
		}
	}

	return out
}

func labels(steps []step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.label
	}

	return out
}

func TestRegistry_NamedComposite(t *testing.T) {
	r := replay(composite(2, KindStruct, "Bar", "Bar"), alias("BarAlias", 2))

	m, ok := r.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, KindStruct, m.Kind)
	assert.Equal(t, "Bar", m.RustName)
	require.NotNil(t, m.CName)
	assert.Equal(t, CName{Identifier: "Bar"}, *m.CName)
	assert.Equal(t, "struct Bar", m.CanonicalName())
	assert.Equal(t, []string{"BarAlias"}, m.Aliases.Values())
}

func TestRegistry_AnonymousResolvedByLaterAlias(t *testing.T) {
	r := replay(composite(1, KindStruct, "", "Anon1"))

	m, ok := r.Lookup(1)
	require.True(t, ok)
	assert.True(t, m.IsAnonymous())
	assert.Empty(t, m.CanonicalName())

	r.OnAliasFound("Foo", 1)

	require.NotNil(t, m.CName)
	assert.Equal(t, CName{Identifier: "Foo", Aliased: true}, *m.CName)
	assert.True(t, m.Aliases.IsEmpty())

	r.OnAliasFound("foo_t", 1)
	assert.Equal(t, []string{"foo_t"}, m.Aliases.Values())
}

func TestRegistry_AliasBeforeType(t *testing.T) {
	before := replay(alias("Foo", 1), composite(1, KindStruct, "", "Anon1"))
	after := replay(composite(1, KindStruct, "", "Anon1"), alias("Foo", 1))

	assert.Equal(t, snapshot(after), snapshot(before))
	assert.Zero(t, before.OrphanCount())

	m, _ := before.Lookup(1)
	assert.Equal(t, CName{Identifier: "Foo", Aliased: true}, *m.CName)
	assert.True(t, m.Aliases.IsEmpty())
}

func TestRegistry_AnonymousPicksSmallestAlias(t *testing.T) {
	r := replay(
		alias("zeta_t", 5),
		alias("Alpha", 5),
		alias("mid", 5),
		composite(5, KindUnion, "", "_bindgen_ty_1"),
	)

	m, _ := r.Lookup(5)
	assert.Equal(t, CName{Identifier: "Alpha", Aliased: true}, *m.CName)
	assert.Equal(t, []string{"mid", "zeta_t"}, m.Aliases.Values())
	assert.Equal(t, "Alpha", m.CanonicalName())
}

func TestRegistry_TagNameSuppressedFromAliases(t *testing.T) {
	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "aliases first",
			steps: []step{
				alias("struct Bar", 2), alias("Bar", 2), alias("bar_t", 2),
				composite(2, KindStruct, "Bar", "Bar"),
			},
		},
		{
			name: "aliases last",
			steps: []step{
				composite(2, KindStruct, "Bar", "Bar"),
				alias("struct Bar", 2), alias("Bar", 2), alias("bar_t", 2),
			},
		},
		{
			name: "prefixed original name",
			steps: []step{
				alias("struct Bar", 2),
				composite(2, KindStruct, "struct Bar", "Bar"),
				alias("bar_t", 2), alias("struct Bar", 2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := replay(tt.steps...)
			m, ok := r.Lookup(2)
			require.True(t, ok)

			assert.Equal(t, "struct Bar", m.CanonicalName())
			assert.False(t, m.Aliases.Contains("struct Bar"))
			assert.False(t, m.Aliases.Contains(m.CName.Identifier))
			assert.Equal(t, []string{"bar_t"}, m.Aliases.Values())
		})
	}
}

func TestRegistry_UnionTagName(t *testing.T) {
	r := replay(alias("union Value", 9), composite(9, KindUnion, "Value", "Value"), alias("value_t", 9))

	m, _ := r.Lookup(9)
	assert.Equal(t, "union Value", m.CanonicalName())
	assert.Equal(t, []string{"value_t"}, m.Aliases.Values())
}

func TestRegistry_OrderIndependence(t *testing.T) {
	events := []step{
		composite(1, KindStruct, "", "Anon1"),
		alias("Foo", 1),
		alias("Afoo", 1),
		composite(2, KindStruct, "Bar", "Bar"),
		alias("BarAlias", 2),
		alias("struct Bar", 2),
	}

	want := snapshot(replay(events...))

	for _, perm := range permutations(events) {
		r := replay(perm...)
		if !assert.Equal(t, want, snapshot(r), "order: %v", labels(perm)) {
			t.Log(spew.Sdump(snapshot(r)))
			return
		}

		assert.Zero(t, r.OrphanCount())
	}

	m := want[1]
	assert.Equal(t, CName{Identifier: "Afoo", Aliased: true}, *m.CName)
	assert.Equal(t, []string{"Foo"}, m.Aliases.Values())
}

func TestRegistry_DuplicateDefinitionOverwrites(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(slog.New(slog.NewTextHandler(&buf, nil)))

	r.OnCompositeFound(3, KindStruct, "Old", "Old")
	r.OnAliasFound("old_t", 3)
	r.OnCompositeFound(3, KindUnion, "New", "New")

	m, _ := r.Lookup(3)
	assert.Equal(t, KindUnion, m.Kind)
	assert.Equal(t, "New", m.RustName)
	assert.True(t, m.Aliases.IsEmpty())
	assert.Equal(t, 1, r.Len())

	diags := r.Diagnostics()
	require.Len(t, diags.Warnings, 1)
	d := diags.Warnings[0]
	assert.Equal(t, diagnostic.CodeDuplicateDefinition, d.Code)
	assert.Equal(t, "id=3", d.Item)
	assert.Contains(t, d.Detail, "old_t")
	assert.False(t, diags.HasErrors())

	assert.Contains(t, buf.String(), "DUPLICATE_DEFINITION")
}

func TestRegistry_ForgetUnusedAliases(t *testing.T) {
	r := replay(alias("Stray", 99))

	assert.Equal(t, 1, r.OrphanCount())
	assert.Equal(t, []ItemID{99}, r.OrphanTargets())
	assert.Equal(t, 1, r.ForgetUnusedAliases())
	assert.Zero(t, r.OrphanCount())
	assert.Zero(t, r.ForgetUnusedAliases())

	diags := r.Diagnostics()
	assert.Equal(t, 1, diags.Count(diagnostic.CodeOrphanAliases))
}

func TestRegistry_ForgetUnusedAliasesCountsEveryName(t *testing.T) {
	r := replay(
		alias("A", 10), alias("B", 10), alias("A", 10),
		alias("C", 11),
		composite(12, KindStruct, "D", "D"),
	)

	assert.Equal(t, 3, r.ForgetUnusedAliases())

	// aliases parked before a purge are gone for good
	r.OnCompositeFound(10, KindStruct, "", "Anon10")
	m, _ := r.Lookup(10)
	assert.True(t, m.IsAnonymous())
}

func TestRegistry_IDsSorted(t *testing.T) {
	r := replay(
		composite(30, KindStruct, "C", "C"),
		composite(4, KindStruct, "A", "A"),
		composite(17, KindUnion, "B", "B"),
	)

	assert.Equal(t, []ItemID{4, 17, 30}, r.IDs())
	assert.NotNil(t, r.Logger())
}
