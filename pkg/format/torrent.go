// Package format renders torrent values as display text shared by the
// list command and the interactive surface.
package format

import (
	"fmt"
	"strings"

	"github.com/JeremPFT/transmission/internal/types"
)

// Options controls formatting behavior.
type Options struct {
	ShowStatus bool
	MaxWidth   int // Max row width (0 = no limit)
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		ShowStatus: true,
		MaxWidth:   0,
	}
}

// Row renders one torrent as a single line of plain text. Styling is the
// caller's business; the row itself carries no escape sequences so span
// offsets stay honest.
func Row(t types.Torrent) string {
	return RowWith(t, DefaultOptions())
}

// RowWith renders one torrent with explicit options.
func RowWith(t types.Torrent, opts Options) string {
	var row string
	if opts.ShowStatus {
		row = fmt.Sprintf("%4d  %-13s  %s", t.ID, t.Status, t.Name)
	} else {
		row = fmt.Sprintf("%4d  %s", t.ID, t.Name)
	}
	if opts.MaxWidth > 0 {
		if runes := []rune(row); len(runes) > opts.MaxWidth {
			row = string(runes[:opts.MaxWidth])
		}
	}
	return row
}

// List renders a torrent table with a header line.
func List(torrents []types.Torrent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%4s  %-13s  %s\n", "ID", "STATUS", "NAME")
	for _, t := range torrents {
		b.WriteString(Row(t))
		b.WriteString("\n")
	}
	return b.String()
}
