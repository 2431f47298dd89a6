package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeremPFT/transmission/internal/types"
)

// navSurface builds the synthetic geometry used by the navigation tests:
// link span A=[0,5), separator gap [5,7), link span B=[7,10).
func navSurface() *Surface {
	return &Surface{
		text: "aaaaa..bbb",
		spans: []Span{
			{Start: 0, End: 5, ItemID: 1, Link: true},
			{Start: 5, End: 7},
			{Start: 7, End: 10, ItemID: 2, Link: true},
		},
	}
}

func TestForward(t *testing.T) {
	s := navSurface()

	pos, ok := s.Forward(0)
	assert.True(t, ok)
	assert.Equal(t, 7, pos, "from inside A, exit it and land on B")

	pos, ok = s.Forward(5)
	assert.True(t, ok)
	assert.Equal(t, 7, pos, "from the gap, land on B")

	pos, ok = s.Forward(9)
	assert.False(t, ok, "no link span after B")
	assert.Equal(t, 9, pos, "cursor unchanged when there is no next")
}

func TestBackward(t *testing.T) {
	s := navSurface()

	pos, ok := s.Backward(9)
	assert.True(t, ok)
	assert.Equal(t, 7, pos, "inside B past its start, land on B's start")

	pos, ok = s.Backward(2)
	assert.True(t, ok)
	assert.Equal(t, 0, pos, "inside A past its start, land on A's start")

	pos, ok = s.Backward(6)
	assert.True(t, ok)
	assert.Equal(t, 0, pos, "from the gap, land on the previous span start")

	pos, ok = s.Backward(0)
	assert.False(t, ok, "nothing before A")
	assert.Equal(t, 0, pos)
}

func TestItemAt(t *testing.T) {
	s := navSurface()

	id, ok := s.ItemAt(3)
	assert.True(t, ok)
	assert.EqualValues(t, 1, id)

	id, ok = s.ItemAt(7)
	assert.True(t, ok)
	assert.EqualValues(t, 2, id)

	_, ok = s.ItemAt(5)
	assert.False(t, ok, "separator carries no item")
}

func TestRefreshEmpty(t *testing.T) {
	s := New()
	s.Refresh([]types.Torrent{{ID: 1, Name: "x"}})
	require.NotEmpty(t, s.Text())

	s.Refresh(nil)
	assert.Empty(t, s.Text())
	assert.Empty(t, s.Spans())
	assert.Zero(t, s.Cursor())
}

func TestRefreshSingleItem(t *testing.T) {
	s := New()
	s.Refresh([]types.Torrent{{ID: 1, Name: "x", Status: types.StatusStopped}})

	var links []Span
	for _, sp := range s.Spans() {
		if sp.Link {
			links = append(links, sp)
		}
	}
	require.Len(t, links, 1, "exactly one link span")
	assert.Contains(t, s.Text()[links[0].Start:links[0].End], "x")
	assert.NotContains(t, s.Text()[links[0].Start:links[0].End], "\n")

	id, ok := s.ItemAt(links[0].Start)
	assert.True(t, ok)
	assert.EqualValues(t, 1, id)
}

func TestRefreshSpansPartitionSurface(t *testing.T) {
	s := New()
	s.Refresh([]types.Torrent{
		{ID: 3, Name: "debian-12.iso", Status: types.StatusDownloading},
		{ID: 1, Name: "naïve café 日本語", Status: types.StatusSeeding},
		{ID: 7, Name: "archive.tar", Status: types.StatusStopped},
	})

	spans := s.Spans()
	require.NotEmpty(t, spans)
	assert.Zero(t, spans[0].Start)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].End, spans[i].Start, "spans must be contiguous")
	}
	assert.Equal(t, len(s.Text()), spans[len(spans)-1].End)

	// Arrival order is preserved, not id order.
	var ids []int64
	for _, sp := range spans {
		if sp.Link {
			ids = append(ids, sp.ItemID)
		}
	}
	assert.Equal(t, []int64{3, 1, 7}, ids)
}

func TestRefreshKeepsCursorWhenInBounds(t *testing.T) {
	items := []types.Torrent{
		{ID: 1, Name: "one"},
		{ID: 2, Name: "two"},
	}
	s := New()
	s.Refresh(items)

	pos, ok := s.Forward(0)
	require.True(t, ok)
	s.SetCursor(pos)

	s.Refresh(items)
	assert.Equal(t, pos, s.Cursor(), "cursor survives a same-shape refresh")

	s.Refresh([]types.Torrent{{ID: 1, Name: "a"}})
	assert.Zero(t, s.Cursor(), "cursor clamps to start when out of bounds")
}

func TestNavigationOverRefreshedSurface(t *testing.T) {
	s := New()
	s.Refresh([]types.Torrent{
		{ID: 10, Name: "first"},
		{ID: 20, Name: "second"},
		{ID: 30, Name: "third"},
	})

	// Walk forward over every entry, then back to the first.
	cursor := 0
	seen := []int64{}
	if id, ok := s.ItemAt(cursor); ok {
		seen = append(seen, id)
	}
	for {
		next, ok := s.Forward(cursor)
		if !ok {
			break
		}
		cursor = next
		id, ok := s.ItemAt(cursor)
		require.True(t, ok)
		seen = append(seen, id)
	}
	assert.Equal(t, []int64{10, 20, 30}, seen)

	for {
		prev, ok := s.Backward(cursor)
		if !ok {
			break
		}
		cursor = prev
	}
	assert.Zero(t, cursor)

	// Every row ends with exactly one separator line break.
	assert.Equal(t, 3, strings.Count(s.Text(), "\n"))
}
