// Package render lays a flat torrent listing out as a single text
// surface annotated with spans, and answers navigation queries over it.
// The span list is rebuilt wholesale on every refresh; navigation never
// sees a partially rebuilt surface.
package render

import (
	"strings"

	"github.com/JeremPFT/transmission/internal/types"
	"github.com/JeremPFT/transmission/pkg/format"
)

// Span is a contiguous annotated region of the surface. Offsets are byte
// offsets into Text, start inclusive, end exclusive. Link spans cover an
// item's display text; non-link spans cover separators and carry no item.
type Span struct {
	Start  int
	End    int
	ItemID int64
	Link   bool
}

// Surface is the rendered listing. Spans partition the text into
// disjoint, ordered, contiguous regions matching item arrival order.
type Surface struct {
	text   string
	spans  []Span
	cursor int
}

func New() *Surface {
	return &Surface{}
}

// Refresh discards the surface and rebuilds it from items: one formatted
// row per item covered by a link span, a newline separator after each
// covered by a non-link span. The prior cursor is kept when still within
// bounds, else clamped to the start.
func (s *Surface) Refresh(items []types.Torrent) {
	var b strings.Builder
	spans := make([]Span, 0, 2*len(items))

	for _, item := range items {
		start := b.Len()
		b.WriteString(format.Row(item))
		spans = append(spans, Span{Start: start, End: b.Len(), ItemID: item.ID, Link: true})

		sep := b.Len()
		b.WriteString("\n")
		spans = append(spans, Span{Start: sep, End: b.Len()})
	}

	s.text = b.String()
	s.spans = spans
	if s.cursor >= len(s.text) {
		s.cursor = 0
	}
}

// Text returns the rendered listing.
func (s *Surface) Text() string {
	return s.text
}

// Cursor returns the remembered cursor position.
func (s *Surface) Cursor() int {
	return s.cursor
}

// SetCursor records a cursor position, clamped into the surface.
func (s *Surface) SetCursor(pos int) {
	if pos < 0 || pos >= len(s.text) {
		pos = 0
	}
	s.cursor = pos
}

// Spans returns the current span list.
func (s *Surface) Spans() []Span {
	return s.spans
}

// Forward returns the position of the next link span after cursor. A
// cursor inside a link span first exits that span. Reports false, with
// the cursor unchanged, when no later link span exists.
func (s *Surface) Forward(cursor int) (int, bool) {
	pos := cursor
	if sp := s.linkAt(pos); sp != nil {
		pos = sp.End
	}
	for ; pos < len(s.text); pos++ {
		if s.linkAt(pos) != nil {
			return pos, true
		}
	}
	return cursor, false
}

// Backward returns the start of the link span the cursor sits in, when
// the cursor is past that start; otherwise the start of the previous
// link span. Reports false, with the cursor unchanged, when there is no
// earlier link span.
func (s *Surface) Backward(cursor int) (int, bool) {
	if sp := s.linkAt(cursor); sp != nil && cursor > sp.Start {
		return sp.Start, true
	}
	for pos := cursor - 1; pos >= 0; pos-- {
		if sp := s.linkAt(pos); sp != nil {
			return sp.Start, true
		}
	}
	return cursor, false
}

// ItemAt returns the item id of the link span covering pos.
func (s *Surface) ItemAt(pos int) (int64, bool) {
	if sp := s.linkAt(pos); sp != nil {
		return sp.ItemID, true
	}
	return 0, false
}

func (s *Surface) linkAt(pos int) *Span {
	for i := range s.spans {
		sp := &s.spans[i]
		if sp.Link && pos >= sp.Start && pos < sp.End {
			return sp
		}
	}
	return nil
}
