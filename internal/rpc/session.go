package rpc

// The session id is the conflict-resolution token the daemon hands out
// through a 409 exchange. It starts empty, is overwritten only from a 409
// response, and is carried on every subsequent frame. It lives on the
// Client rather than in package state so independent clients never share
// tokens.

// SessionID returns the current session id. Empty until the daemon has
// issued one.
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// setSessionID records a fresh token. Caller holds c.mu.
func (c *Client) setSessionID(id string) {
	c.sessionID = id
}
