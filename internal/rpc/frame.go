package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Wire constants. The daemon serves its RPC endpoint at a fixed path and
// negotiates a session id through a dedicated header (409 exchange).
const (
	rpcPath       = "/transmission/rpc"
	sessionHeader = "X-Transmission-Session-Id"
)

var frameTerminator = []byte("\r\n\r\n")

// encodeFrame serializes a request into its wire form: request line,
// session-id header, Content-Length header, blank line, JSON payload.
// The declared length is the byte length of the payload, not its rune
// count, so multibyte names survive the completeness test on the far end.
func encodeFrame(req *Request, sessionID string) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", req.Method, err)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "POST %s HTTP/1.1\r\n", rpcPath)
	fmt.Fprintf(&b, "%s: %s\r\n", sessionHeader, sessionID)
	fmt.Fprintf(&b, "Content-Length: %d\r\n", len(payload))
	b.WriteString("\r\n")
	b.Write(payload)
	return b.Bytes(), nil
}

// frameComplete reports whether buf holds a full response frame: the
// header block is terminated and at least Content-Length bytes of body
// have arrived. Without a terminator or a length header the frame is
// treated as incomplete and the caller keeps reading.
func frameComplete(buf []byte) bool {
	header, body, found := bytes.Cut(buf, frameTerminator)
	if !found {
		return false
	}
	length, ok := contentLength(header)
	if !ok {
		return false
	}
	return len(body) >= length
}

// parseStatus extracts the numeric status from the first response line,
// e.g. "HTTP/1.1 409 Conflict" -> 409.
func parseStatus(buf []byte) (int, error) {
	line, _, _ := bytes.Cut(buf, []byte("\r\n"))
	fields := strings.Fields(string(line))
	if len(fields) < 2 {
		return 0, fmt.Errorf("malformed status line %q", line)
	}
	status, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("malformed status line %q: %w", line, err)
	}
	return status, nil
}

// sessionIDFrom returns the session-id header value, or "" if the header
// is absent.
func sessionIDFrom(buf []byte) string {
	value, _ := headerValue(buf, sessionHeader)
	return value
}

// frameBody returns the declared-length body region. When the frame is
// truncated it returns whatever bytes are present, so a dead connection
// still yields something for the decoder to reject.
func frameBody(buf []byte) []byte {
	header, body, found := bytes.Cut(buf, frameTerminator)
	if !found {
		return nil
	}
	if length, ok := contentLength(header); ok && length <= len(body) {
		return body[:length]
	}
	return body
}

func contentLength(header []byte) (int, bool) {
	value, ok := headerValue(header, "Content-Length")
	if !ok {
		return 0, false
	}
	length, err := strconv.Atoi(value)
	if err != nil || length < 0 {
		return 0, false
	}
	return length, true
}

// headerValue scans the header block for a "Name: value" line. Header
// names are matched case-insensitively.
func headerValue(header []byte, name string) (string, bool) {
	for _, line := range bytes.Split(header, []byte("\r\n")) {
		key, value, found := bytes.Cut(line, []byte(":"))
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(string(key)), name) {
			return strings.TrimSpace(string(value)), true
		}
	}
	return "", false
}
