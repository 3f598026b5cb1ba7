// Package dataset implements the layout gallery data model.
//
// The dataset ships as a newline-delimited JSON file with one LayoutSample
// per line. A Catalog holds the parsed samples, exposes the distinct layout
// types in sorted order, and tracks the current selection with wrap-around
// navigation.
package dataset

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mazeview/mazeview/pkg/jsonutil"
)

// LayoutSample is one dataset record: a layout variant and the image set
// generated for it. Image paths are relative to the dataset base URL.
type LayoutSample struct {
	LayoutType string   `json:"layout_type"`
	Images     []string `json:"images"`
}

// ParseWarning records a recoverable problem found while parsing a
// dataset file in lenient mode.
type ParseWarning struct {
	Line   int
	Reason string
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}

// Parse decodes a newline-delimited dataset document in lenient mode:
// malformed lines and duplicate layout types are skipped and reported as
// warnings, keeping the rest of the dataset browsable. Line numbers in
// warnings count non-blank lines starting at 1.
func Parse(data []byte) ([]LayoutSample, []ParseWarning) {
	var samples []LayoutSample
	var warnings []ParseWarning
	seen := make(map[string]bool)

	for i, line := range jsonutil.SplitLines(data) {
		var s LayoutSample
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			warnings = append(warnings, ParseWarning{Line: i + 1, Reason: err.Error()})
			continue
		}
		if s.LayoutType == "" {
			warnings = append(warnings, ParseWarning{Line: i + 1, Reason: "missing layout_type"})
			continue
		}
		if seen[s.LayoutType] {
			// First sample per layout wins.
			warnings = append(warnings, ParseWarning{
				Line:   i + 1,
				Reason: fmt.Sprintf("duplicate layout_type %q", s.LayoutType),
			})
			continue
		}
		seen[s.LayoutType] = true
		samples = append(samples, s)
	}

	return samples, warnings
}

// ParseStrict decodes a newline-delimited dataset document, failing on the
// first malformed line. Duplicate layout types are still collapsed
// first-match-wins.
func ParseStrict(data []byte) ([]LayoutSample, error) {
	var samples []LayoutSample
	seen := make(map[string]bool)

	for i, line := range jsonutil.SplitLines(data) {
		var s LayoutSample
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			return nil, fmt.Errorf("dataset line %d: %w", i+1, err)
		}
		if seen[s.LayoutType] {
			continue
		}
		seen[s.LayoutType] = true
		samples = append(samples, s)
	}

	return samples, nil
}

// Catalog holds the parsed dataset and the current layout selection.
type Catalog struct {
	samples  map[string]LayoutSample
	layouts  []string // distinct layout types, sorted ascending
	selected int      // index into layouts; -1 when the catalog is empty
}

// NewCatalog builds a catalog from parsed samples. The selectable layouts
// are the distinct layout types sorted lexicographically; the first one is
// the default selection.
func NewCatalog(samples []LayoutSample) *Catalog {
	c := &Catalog{
		samples:  make(map[string]LayoutSample, len(samples)),
		selected: -1,
	}
	for _, s := range samples {
		if _, ok := c.samples[s.LayoutType]; ok {
			continue
		}
		c.samples[s.LayoutType] = s
		c.layouts = append(c.layouts, s.LayoutType)
	}
	sort.Strings(c.layouts)
	if len(c.layouts) > 0 {
		c.selected = 0
	}
	return c
}

// Layouts returns the selectable layout types in sorted order.
func (c *Catalog) Layouts() []string {
	return c.layouts
}

// Selected returns the currently selected layout type, or "" if the
// catalog is empty.
func (c *Catalog) Selected() string {
	if c.selected < 0 {
		return ""
	}
	return c.layouts[c.selected]
}

// Select switches to the given layout type. Unknown layouts are ignored
// and the selection is unchanged.
func (c *Catalog) Select(layout string) {
	for i, l := range c.layouts {
		if l == layout {
			c.selected = i
			return
		}
	}
}

// Navigate moves the selection by delta layouts, wrapping at both ends.
func (c *Catalog) Navigate(delta int) {
	n := len(c.layouts)
	if n == 0 {
		return
	}
	c.selected = ((c.selected+delta)%n + n) % n
}

// Current returns the sample for the selected layout. ok is false when the
// catalog is empty; callers render that as a "no data" state, not an error.
func (c *Catalog) Current() (LayoutSample, bool) {
	if c.selected < 0 {
		return LayoutSample{}, false
	}
	s, ok := c.samples[c.layouts[c.selected]]
	return s, ok
}

// GridColumns returns the gallery column count for an image set:
// 1-2 images render in 2 columns, exactly 3 in 3, 4 or more in 4.
func GridColumns(imageCount int) int {
	switch {
	case imageCount <= 2:
		return 2
	case imageCount == 3:
		return 3
	default:
		return 4
	}
}
