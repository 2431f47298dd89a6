package rpc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConflict indicates the daemon rejected the session id on the retry
// as well. The first 409 is recovered transparently; a second one is not.
var ErrConflict = errors.New("session id rejected twice")

// DaemonError is returned when the daemon completed the exchange but the
// result field carries an error message instead of "success".
type DaemonError struct {
	Method string
	Result string
}

func (err *DaemonError) Error() string {
	message := strings.TrimSpace(err.Result)
	if message == "" {
		message = "rpc method failed"
	}
	if err.Method == "" {
		return message
	}
	return fmt.Sprintf("%s: %s", err.Method, message)
}
