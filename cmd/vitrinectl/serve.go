package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vitrinelab/vitrine/tool"
)

// request is one line of the serve protocol.
type request struct {
	ID     string          `json:"id"`
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params"`
}

// maxLineBytes caps one request line. Trajectory payloads are the
// largest realistic requests and stay far below this.
const maxLineBytes = 1 << 20

func newServeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve line-delimited JSON tool calls over stdio",
		Long: `Reads one JSON request {"id"?, "tool", "params"} per stdin line and
writes one envelope per stdout line. Requests without an id get a fresh
UUID. Logs go to stderr. The session ends when stdin closes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o.log.Info().Str("version", tool.Version).Msg("serving on stdio")
			return serveLoop(o.registry, cmd.InOrStdin(), cmd.OutOrStdout(), o.log)
		},
	}
}

// serveLoop answers each request line with exactly one envelope line.
// Blank lines are skipped. An unparseable line yields a bad_request
// envelope rather than ending the session; only write failures and
// read errors terminate the loop.
func serveLoop(reg *tool.Registry, in io.Reader, out io.Writer, log zerolog.Logger) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	enc := json.NewEncoder(out)

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			log.Warn().Err(err).Msg("unparseable request line")
			bad := tool.Envelope{
				ID: uuid.New().String(),
				OK: false,
				Error: &tool.Fault{
					Kind:    "bad_request",
					Message: "invalid request: " + err.Error(),
				},
			}
			if err := enc.Encode(bad); err != nil {
				return fmt.Errorf("write envelope: %w", err)
			}
			continue
		}

		if err := enc.Encode(reg.Dispatch(req.ID, req.Tool, req.Params)); err != nil {
			return fmt.Errorf("write envelope: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read requests: %w", err)
	}

	log.Info().Msg("stdin closed, shutting down")
	return nil
}
