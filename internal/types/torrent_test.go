package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "stopped", StatusStopped.String())
	assert.Equal(t, "downloading", StatusDownloading.String())
	assert.Equal(t, "seeding", StatusSeeding.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestToggleAction(t *testing.T) {
	tests := []struct {
		status Status
		want   Action
	}{
		{StatusStopped, ActionStart},
		{StatusDownloading, ActionStop},
		{StatusSeeding, ActionStop},
		{StatusCheckWait, ActionNone},
		{StatusChecking, ActionNone},
		{StatusDownloadWait, ActionNone},
		{StatusSeedWait, ActionNone},
		{Status(99), ActionNone},
	}

	for _, test := range tests {
		t.Run(test.status.String(), func(t *testing.T) {
			assert.Equal(t, test.want, test.status.ToggleAction())
		})
	}
}

func TestTorrentDecodesFromDaemonPayload(t *testing.T) {
	var torrent Torrent
	require.NoError(t, json.Unmarshal([]byte(`{"id":12,"name":"x","status":4}`), &torrent))
	assert.Equal(t, Torrent{ID: 12, Name: "x", Status: StatusDownloading}, torrent)
}
