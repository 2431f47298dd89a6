package rpc

import "encoding/json"

// ResultSuccess is the result string the daemon returns when a method
// succeeded. Anything else is a user-facing error message.
const ResultSuccess = "success"

// Request is one RPC call to the daemon. Immutable once built.
type Request struct {
	Method    string                 `json:"method"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
	Tag       interface{}            `json:"tag,omitempty"`
}

// Response is the decoded body of a completed RPC exchange. Arguments is
// left raw so the method layer can decode it into its own types.
type Response struct {
	Result    string          `json:"result"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
	Tag       interface{}     `json:"tag,omitempty"`
}

// Success reports whether the daemon accepted the request.
func (r *Response) Success() bool {
	return r.Result == ResultSuccess
}
