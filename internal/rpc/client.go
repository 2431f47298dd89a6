// Package rpc implements the transport to the download daemon's RPC
// service: wire framing, session-id conflict negotiation, and the
// request/response cycle over a plain TCP stream.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultAddr is where the daemon listens unless the caller says
// otherwise.
const DefaultAddr = "127.0.0.1:9091"

// defaultTimeout bounds the await loop. The protocol itself has no
// timeout; without one a daemon that accepts the connection but never
// finishes a frame would stall the caller forever.
const defaultTimeout = 30 * time.Second

// Client drives RPC calls against one daemon. It owns the session id and
// the connection slot; calls are serialized, there is never more than one
// exchange in flight.
type Client struct {
	addr    string
	timeout time.Duration
	logger  *zap.Logger

	mu        sync.Mutex
	conn      net.Conn
	buf       []byte
	sessionID string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout overrides the per-exchange read deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New creates a client for the daemon at addr. An empty addr means
// DefaultAddr.
func New(addr string, opts ...Option) *Client {
	if addr == "" {
		addr = DefaultAddr
	}
	c := &Client{
		addr:    addr,
		timeout: defaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call performs one RPC method end to end: connect, send, await the
// response frame, interpret the status, decode. A 409 status updates the
// session id and triggers exactly one resend; a 409 on the resend
// propagates as ErrConflict. The connection is torn down before Call
// returns, on every path.
func (c *Client) Call(ctx context.Context, method string, args map[string]interface{}, tag interface{}) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.release()

	req := &Request{Method: method, Arguments: args, Tag: tag}

	raw, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}
	status, err := parseStatus(raw)
	if err != nil {
		return nil, err
	}

	if status == http.StatusConflict {
		c.setSessionID(sessionIDFrom(raw))
		c.logger.Debug("session id rejected, retrying",
			zap.String("method", method),
			zap.String("session_id", c.sessionID))
		c.release()

		raw, err = c.roundTrip(ctx, req)
		if err != nil {
			return nil, err
		}
		status, err = parseStatus(raw)
		if err != nil {
			return nil, err
		}
		if status == http.StatusConflict {
			return nil, ErrConflict
		}
	}

	var resp Response
	if err := json.Unmarshal(frameBody(raw), &resp); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if !resp.Success() {
		return nil, &DaemonError{Method: method, Result: resp.Result}
	}
	return &resp, nil
}

// roundTrip writes one frame and accumulates response bytes until the
// frame is complete or the connection dies. A dead connection is not an
// error here; whatever arrived is handed back and the parse decides.
// Caller holds c.mu.
func (c *Client) roundTrip(ctx context.Context, req *Request) ([]byte, error) {
	conn, err := c.acquire()
	if err != nil {
		return nil, err
	}

	frame, err := encodeFrame(req, c.sessionID)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	if _, err := conn.Write(frame); err != nil {
		return nil, fmt.Errorf("write %s frame: %w", req.Method, err)
	}
	c.logger.Debug("frame sent",
		zap.String("method", req.Method),
		zap.Int("bytes", len(frame)))

	c.buf = c.buf[:0]
	chunk := make([]byte, 4096)
	for !frameComplete(c.buf) {
		n, err := conn.Read(chunk)
		if n > 0 {
			c.buf = append(c.buf, chunk[:n]...)
		}
		if err != nil {
			// Connection closed or deadline hit: parse what we have.
			c.logger.Debug("read ended before frame completed",
				zap.Int("accumulated", len(c.buf)),
				zap.Error(err))
			break
		}
	}
	return c.buf, nil
}
