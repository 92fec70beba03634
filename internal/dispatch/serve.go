package dispatch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// maxRequestBytes bounds a single request line; diffs travel the other way,
// so requests stay small.
const maxRequestBytes = 1 << 20

// Request is one frontend command invocation.
type Request struct {
	ID      int64           `json:"id"`
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// Response answers a Request. Exactly one of Result and Error is set.
type Response struct {
	ID     int64  `json:"id"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Serve reads newline-delimited JSON requests from in and writes one response
// per request to out. Each request runs in its own goroutine: a slow
// subprocess does not block other calls, and calls do not coordinate with
// each other. Serve returns when in is exhausted or ctx is canceled.
func (r *Registry) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	respond := func(resp Response) {
		mu.Lock()
		defer mu.Unlock()
		if err := json.NewEncoder(out).Encode(resp); err != nil {
			slog.Error("failed to write response", "id", resp.ID, "err", err)
		}
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxRequestBytes)

	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			respond(Response{Error: fmt.Sprintf("malformed request: %v", err)})
			continue
		}

		wg.Add(1)
		go func(req Request) {
			defer wg.Done()
			slog.Debug("dispatch", "id", req.ID, "command", req.Command)
			result, err := r.Dispatch(ctx, req.Command, req.Args)
			if err != nil {
				slog.Debug("command failed", "id", req.ID, "command", req.Command, "err", err)
				respond(Response{ID: req.ID, Error: err.Error()})
				return
			}
			respond(Response{ID: req.ID, Result: result})
		}(req)
	}

	wg.Wait()
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read requests: %w", err)
	}
	return nil
}
