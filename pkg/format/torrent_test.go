package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JeremPFT/transmission/internal/types"
)

func TestRow(t *testing.T) {
	row := Row(types.Torrent{ID: 3, Name: "debian-12.iso", Status: types.StatusDownloading})
	assert.Contains(t, row, "debian-12.iso")
	assert.Contains(t, row, "downloading")
	assert.False(t, strings.Contains(row, "\n"))
	assert.False(t, strings.Contains(row, "\x1b"), "rows carry no escape sequences")
}

func TestRowWithMaxWidth(t *testing.T) {
	torrent := types.Torrent{ID: 1, Name: "日本語の長いトレント名", Status: types.StatusSeeding}
	row := RowWith(torrent, Options{ShowStatus: true, MaxWidth: 20})
	assert.Len(t, []rune(row), 20, "truncation counts runes, not bytes")
}

func TestList(t *testing.T) {
	out := List([]types.Torrent{
		{ID: 1, Name: "one", Status: types.StatusStopped},
		{ID: 2, Name: "two", Status: types.StatusSeeding},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3, "header plus one line per torrent")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "one")
	assert.Contains(t, lines[2], "two")
}
