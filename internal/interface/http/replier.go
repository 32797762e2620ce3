package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/yanqian/linkrelay/internal/domain/relay"
)

// collectingReplier buffers replies for the synchronous webhook.
type collectingReplier struct {
	mu      sync.Mutex
	replies []string
}

func (r *collectingReplier) Reply(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, text)
	return nil
}

func (r *collectingReplier) collected() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.replies))
	copy(out, r.replies)
	return out
}

// streamFrame is one Server-Sent Event payload. Reply frames carry Text and
// Final; the closing frame has Type "done" and carries Result.
type streamFrame struct {
	Type   string        `json:"type"`
	Text   string        `json:"text,omitempty"`
	Final  bool          `json:"final"`
	Result *relay.Result `json:"result,omitempty"`
}

// sseReplier flushes every reply to the host as soon as it is produced.
// The first reply of a matched message is the ack; every later one is final.
type sseReplier struct {
	mu      sync.Mutex
	w       io.Writer
	flusher http.Flusher
	sent    int
}

func (r *sseReplier) Reply(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	final := r.sent > 0
	r.sent++
	r.mu.Unlock()
	return r.send(streamFrame{Type: "reply", Text: text, Final: final})
}

func (r *sseReplier) done(result relay.Result) error {
	return r.send(streamFrame{Type: "done", Result: &result})
}

func (r *sseReplier) send(frame streamFrame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintf(r.w, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	r.flusher.Flush()
	return nil
}

var (
	_ relay.Replier = (*collectingReplier)(nil)
	_ relay.Replier = (*sseReplier)(nil)
)
