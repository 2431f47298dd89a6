// Package torrent maps RPC responses onto torrent values and issues the
// specific daemon methods (list, start, stop, add).
package torrent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/JeremPFT/transmission/internal/rpc"
	"github.com/JeremPFT/transmission/internal/types"
)

// Caller is the transport entry point the service drives. Satisfied by
// *rpc.Client.
type Caller interface {
	Call(ctx context.Context, method string, args map[string]interface{}, tag interface{}) (*rpc.Response, error)
}

// listFields are the torrent fields fetched per refresh.
var listFields = []string{"id", "name", "status"}

// Service issues daemon methods through a Caller and decodes the
// payloads.
type Service struct {
	client Caller
	logger *zap.Logger
	tag    atomic.Int64
}

func NewService(client Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// List fetches all torrents the daemon tracks.
func (s *Service) List(ctx context.Context) ([]types.Torrent, error) {
	resp, err := s.client.Call(ctx, "torrent-get", map[string]interface{}{
		"fields": listFields,
	}, s.nextTag())
	if err != nil {
		return nil, err
	}

	var payload struct {
		Torrents []types.Torrent `json:"torrents"`
	}
	if err := json.Unmarshal(resp.Arguments, &payload); err != nil {
		return nil, fmt.Errorf("decode torrent list: %w", err)
	}
	s.logger.Debug("torrent list fetched", zap.Int("count", len(payload.Torrents)))
	return payload.Torrents, nil
}

// Start resumes the given torrents.
func (s *Service) Start(ctx context.Context, ids ...int64) error {
	return s.action(ctx, "torrent-start", ids)
}

// Stop pauses the given torrents.
func (s *Service) Stop(ctx context.Context, ids ...int64) error {
	return s.action(ctx, "torrent-stop", ids)
}

// Toggle starts a stopped torrent and stops a downloading or seeding
// one. Torrents in transitional states are left untouched.
func (s *Service) Toggle(ctx context.Context, t types.Torrent) error {
	switch t.Status.ToggleAction() {
	case types.ActionStart:
		return s.Start(ctx, t.ID)
	case types.ActionStop:
		return s.Stop(ctx, t.ID)
	default:
		return nil
	}
}

// Add hands a magnet link, URL, or local file path to the daemon and
// returns the resulting torrent. Re-adding an existing torrent returns
// the duplicate the daemon already tracks.
func (s *Service) Add(ctx context.Context, uri string) (types.Torrent, error) {
	resp, err := s.client.Call(ctx, "torrent-add", map[string]interface{}{
		"filename": uri,
	}, s.nextTag())
	if err != nil {
		return types.Torrent{}, err
	}

	var payload struct {
		Added     types.Torrent `json:"torrent-added"`
		Duplicate types.Torrent `json:"torrent-duplicate"`
	}
	if err := json.Unmarshal(resp.Arguments, &payload); err != nil {
		return types.Torrent{}, fmt.Errorf("decode torrent-add response: %w", err)
	}
	if payload.Added.ID != 0 {
		return payload.Added, nil
	}
	return payload.Duplicate, nil
}

func (s *Service) action(ctx context.Context, method string, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("%s: no torrent ids given", method)
	}
	_, err := s.client.Call(ctx, method, map[string]interface{}{
		"ids": ids,
	}, s.nextTag())
	return err
}

// nextTag produces a correlation value for the outbound request. The
// transport does not match on it; it exists for logs and daemon traces.
func (s *Service) nextTag() int64 {
	return s.tag.Add(1)
}
