package rpc

import (
	"fmt"
	"net"
	"time"
)

const dialTimeout = 5 * time.Second

// acquire returns the live connection slot, dialing a fresh TCP
// connection when the slot is empty. Caller holds c.mu. Under the current
// release discipline every call cycle ends with release, so acquire
// normally dials; the reuse branch only matters within the conflict
// retry.
func (c *Client) acquire() (net.Conn, error) {
	if c.conn != nil {
		return c.conn, nil
	}
	conn, err := net.DialTimeout("tcp", c.addr, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", c.addr, err)
	}
	c.conn = conn
	return conn, nil
}

// release closes the connection slot and drops the accumulation buffer.
// It runs once per call cycle, on success and on every error path, so a
// failed request never leaks a connection. Safe to call with an empty
// slot.
func (c *Client) release() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.buf = nil
}
