package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSONL = `{"layout_type":"4room","images":["a.png","b.png"]}
{"layout_type":"3room","images":["c.png"]}
`

func TestParseWellFormed(t *testing.T) {
	samples, warnings := Parse([]byte(sampleJSONL))
	require.Len(t, samples, 2)
	assert.Empty(t, warnings)
	assert.Equal(t, "4room", samples[0].LayoutType)
	assert.Equal(t, []string{"a.png", "b.png"}, samples[0].Images)
}

func TestParseSkipsMalformedLines(t *testing.T) {
	data := []byte(`{"layout_type":"4room","images":[]}
{broken
{"layout_type":"9room","images":["x.png"]}
`)
	samples, warnings := Parse(data)
	require.Len(t, samples, 2)
	require.Len(t, warnings, 1)
	assert.Equal(t, 2, warnings[0].Line)
}

func TestParseDuplicateLayoutFirstWins(t *testing.T) {
	data := []byte(`{"layout_type":"4room","images":["first.png"]}
{"layout_type":"4room","images":["second.png"]}
`)
	samples, warnings := Parse(data)
	require.Len(t, samples, 1)
	assert.Equal(t, []string{"first.png"}, samples[0].Images)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "duplicate")
}

func TestParseStrictAbortsOnBadLine(t *testing.T) {
	_, err := ParseStrict([]byte("{broken\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	samples, err := ParseStrict([]byte(sampleJSONL))
	require.NoError(t, err)
	assert.Len(t, samples, 2)
}

func TestCatalogSortedLayoutsAndDefault(t *testing.T) {
	samples, _ := Parse([]byte(sampleJSONL))
	c := NewCatalog(samples)
	assert.Equal(t, []string{"3room", "4room"}, c.Layouts())
	assert.Equal(t, "3room", c.Selected())
}

func TestCatalogNavigateWraps(t *testing.T) {
	c := NewCatalog([]LayoutSample{
		{LayoutType: "a"}, {LayoutType: "b"}, {LayoutType: "c"},
	})

	c.Navigate(-1)
	assert.Equal(t, "c", c.Selected(), "previous from first wraps to last")
	c.Navigate(1)
	assert.Equal(t, "a", c.Selected(), "next from last wraps to first")
	c.Navigate(2)
	assert.Equal(t, "c", c.Selected())
}

func TestCatalogEmpty(t *testing.T) {
	c := NewCatalog(nil)
	assert.Equal(t, "", c.Selected())
	_, ok := c.Current()
	assert.False(t, ok)
	// Navigation on an empty catalog is a no-op, not a panic.
	c.Navigate(1)
	assert.Equal(t, "", c.Selected())
}

func TestCatalogSelectUnknownIgnored(t *testing.T) {
	c := NewCatalog([]LayoutSample{{LayoutType: "a"}, {LayoutType: "b"}})
	c.Select("b")
	assert.Equal(t, "b", c.Selected())
	c.Select("zzz")
	assert.Equal(t, "b", c.Selected())
}

func TestGridColumns(t *testing.T) {
	want := map[int]int{1: 2, 2: 2, 3: 3, 4: 4, 5: 4}
	for count, cols := range want {
		assert.Equal(t, cols, GridColumns(count), "image count %d", count)
	}
}
