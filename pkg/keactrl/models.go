// Package keactrl implements a client for the Kea control agent, the
// REST endpoint in front of the Kea daemons. The generator uses it to
// test and install rendered configurations without restarting the
// server.
package keactrl

import "fmt"

// Result codes returned by the control agent
const (
	ResultSuccess     = 0
	ResultError       = 1
	ResultUnsupported = 2
	ResultEmpty       = 3
)

// Request is a single command sent to the control agent. Service
// selects the daemons that should handle the command, an empty list
// addresses the agent itself.
type Request struct {
	Command   string         `json:"command"`
	Service   []string       `json:"service,omitempty"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Response is the per-daemon answer to a request
type Response struct {
	Result    int            `json:"result"`
	Text      string         `json:"text,omitempty"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Err maps a non-success result to an error. An empty result is not
// an error, the command ran but found nothing to report.
func (r *Response) Err() error {
	switch r.Result {
	case ResultSuccess, ResultEmpty:
		return nil
	case ResultUnsupported:
		return fmt.Errorf("command not supported by the server: %s", r.Text)
	default:
		return fmt.Errorf("command failed: %s", r.Text)
	}
}
