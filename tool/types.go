package tool

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrUnknownTool is returned by Dispatch for names absent from the
	// registry.
	ErrUnknownTool = errors.New("tool: unknown tool")

	// ErrBadParams wraps JSON decode failures and missing required
	// parameters.
	ErrBadParams = errors.New("tool: invalid parameters")
)

// Handler executes one tool against its raw JSON parameters. A nil or
// empty message is treated as an empty parameter object.
type Handler func(params json.RawMessage) (any, error)

// Tool binds a wire name to its handler.
type Tool struct {
	Name        string
	Description string
	Handler     Handler
}

// Info is the serializable face of a registered tool.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Fault is the structured error half of an Envelope. Kind is stable and
// machine-readable; Message is human-readable detail.
type Fault struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Envelope is the uniform outcome of one dispatch. Exactly one of
// Result and Error is populated.
type Envelope struct {
	ID      string        `json:"id"`
	Tool    string        `json:"tool"`
	OK      bool          `json:"ok"`
	Result  any           `json:"result,omitempty"`
	Error   *Fault        `json:"error,omitempty"`
	Elapsed time.Duration `json:"elapsed_ns"`
}
