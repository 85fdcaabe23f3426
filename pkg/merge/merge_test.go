package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(ids ...string) *Document {
	d := &Document{}
	for _, id := range ids {
		d.Blocks = append(d.Blocks, Block{ID: id, Kind: "table"})
	}
	return d
}

func blockIDs(d *Document) []string {
	var ids []string
	for _, b := range d.Blocks {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestResolve_New(t *testing.T) {
	r := NewResolver(DefaultConfig())

	res := r.Resolve(nil, doc("revenue"), Signal{})
	assert.Equal(t, ActionNew, res.Action)
	assert.Equal(t, []string{"revenue"}, blockIDs(res.Document))
	assert.False(t, res.Ambiguous)

	// An empty prior document counts as absent.
	res = r.Resolve(&Document{}, doc("revenue"), Signal{})
	assert.Equal(t, ActionNew, res.Action)
}

func TestResolve_Modify(t *testing.T) {
	r := NewResolver(DefaultConfig())
	prev := doc("revenue", "expenses", "headcount")

	fragment := &Document{Blocks: []Block{{ID: "expenses", Kind: "bar_chart"}}}
	res := r.Resolve(prev, fragment, Signal{RelatedToCurrent: true})

	require.Equal(t, ActionModify, res.Action)
	assert.False(t, res.Ambiguous)
	// Subset replaced in place, rest preserved, order stable.
	require.Equal(t, []string{"revenue", "expenses", "headcount"}, blockIDs(res.Document))
	assert.Equal(t, "bar_chart", res.Document.Blocks[1].Kind)
	assert.Equal(t, "table", res.Document.Blocks[0].Kind)
}

func TestResolve_Add(t *testing.T) {
	r := NewResolver(DefaultConfig())
	prev := doc("revenue")

	res := r.Resolve(prev, doc("forecast"), Signal{RelatedToCurrent: true})
	assert.Equal(t, ActionAdd, res.Action)
	assert.Equal(t, []string{"revenue", "forecast"}, blockIDs(res.Document))
}

func TestResolve_Replace(t *testing.T) {
	r := NewResolver(DefaultConfig())
	prev := doc("revenue")

	t.Run("unrelated question supersedes the document", func(t *testing.T) {
		res := r.Resolve(prev, doc("inventory"), Signal{RelatedToCurrent: false})
		assert.Equal(t, ActionReplace, res.Action)
		assert.Equal(t, []string{"inventory"}, blockIDs(res.Document))
		assert.False(t, res.Ambiguous)
	})

	t.Run("fragment covering every block supersedes", func(t *testing.T) {
		res := r.Resolve(doc("a", "b"), doc("a", "b"), Signal{RelatedToCurrent: true})
		assert.Equal(t, ActionReplace, res.Action)
	})
}

func TestResolve_AmbiguousDefaultsToReplace(t *testing.T) {
	r := NewResolver(DefaultConfig())
	prev := doc("revenue", "expenses")

	// One matching block, one unknown: partial overlap.
	res := r.Resolve(prev, doc("revenue", "forecast"), Signal{RelatedToCurrent: true})
	assert.Equal(t, ActionReplace, res.Action)
	assert.True(t, res.Ambiguous)
	assert.Equal(t, []string{"revenue", "forecast"}, blockIDs(res.Document))
}

func TestResolve_TunableAmbiguityPolicy(t *testing.T) {
	r := NewResolver(Config{AmbiguityDefault: ActionReplace, ModifyThreshold: 0.5})
	prev := doc("revenue", "expenses")

	// 1 of 2 fragment blocks match: ratio 0.5 meets the threshold, so the
	// matched subset is modified and the new block appended.
	res := r.Resolve(prev, doc("revenue", "forecast"), Signal{RelatedToCurrent: true})
	assert.Equal(t, ActionModify, res.Action)
	assert.True(t, res.Ambiguous)
	assert.Equal(t, []string{"revenue", "expenses", "forecast"}, blockIDs(res.Document))
}

func TestResolve_EmptyFragmentKeepsDocument(t *testing.T) {
	r := NewResolver(DefaultConfig())
	prev := doc("revenue")

	res := r.Resolve(prev, nil, Signal{})
	assert.Equal(t, []string{"revenue"}, blockIDs(res.Document))
}

func TestResolve_Deterministic(t *testing.T) {
	r := NewResolver(DefaultConfig())
	prev := doc("a", "b", "c")
	frag := &Document{Blocks: []Block{{ID: "b", Kind: "line_chart"}}}

	first := r.Resolve(prev, frag, Signal{RelatedToCurrent: true})
	second := r.Resolve(prev, frag, Signal{RelatedToCurrent: true})

	e1, err := first.Document.Encode()
	require.NoError(t, err)
	e2, err := second.Document.Encode()
	require.NoError(t, err)
	assert.Equal(t, e1, e2)
	assert.Equal(t, first.Action, second.Action)
}

func TestParseDocument(t *testing.T) {
	d, err := ParseDocument("")
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.True(t, d.Empty())

	d, err = ParseDocument(`{"blocks":[{"id":"x","kind":"table"}]}`)
	require.NoError(t, err)
	require.Len(t, d.Blocks, 1)

	_, err = ParseDocument("{not json")
	assert.Error(t, err)
}
