// Package types holds the torrent values shared by the RPC method layer,
// the render model, and the CLI.
package types

// Status is the daemon's numeric activity code for a torrent.
type Status int

const (
	StatusStopped Status = iota
	StatusCheckWait
	StatusChecking
	StatusDownloadWait
	StatusDownloading
	StatusSeedWait
	StatusSeeding
)

func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusCheckWait:
		return "check-wait"
	case StatusChecking:
		return "checking"
	case StatusDownloadWait:
		return "download-wait"
	case StatusDownloading:
		return "downloading"
	case StatusSeedWait:
		return "seed-wait"
	case StatusSeeding:
		return "seeding"
	default:
		return "unknown"
	}
}

// Action is what a toggle should do for a torrent in a given status.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionStop
)

// ToggleAction maps a status to its toggle behavior: stopped torrents
// start, active ones stop, transitional states are left alone.
func (s Status) ToggleAction() Action {
	switch s {
	case StatusStopped:
		return ActionStart
	case StatusDownloading, StatusSeeding:
		return ActionStop
	case StatusCheckWait, StatusChecking, StatusDownloadWait, StatusSeedWait:
		return ActionNone
	default:
		return ActionNone
	}
}

// Torrent is one job tracked by the daemon. The client only ever holds
// transient copies fetched per request; the daemon owns the real state.
type Torrent struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status Status `json:"status"`
}
