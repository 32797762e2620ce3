package relay

import "context"

// Config configures the relay domain.
type Config struct {
	// Rooms restricts relaying to the listed chat rooms. Empty means every room.
	Rooms []string
}

// IncomingMessage is one chat event delivered by the host.
type IncomingMessage struct {
	Room        string `json:"room"`
	Text        string `json:"msg"`
	Sender      string `json:"sender"`
	IsGroupChat bool   `json:"isGroupChat"`
}

// SummarizeRequest is the body posted to the summarization endpoint.
type SummarizeRequest struct {
	Msg    string `json:"msg"`
	Sender string `json:"sender"`
	Room   string `json:"room"`
}

// SummarizeResponse is the JSON payload returned with status 200 or 400.
type SummarizeResponse struct {
	VideoTitle       string `json:"video_title,omitempty"`
	Summary          string `json:"summary,omitempty"`
	Error            string `json:"error,omitempty"`
	Language         string `json:"language,omitempty"`
	TranscriptLength int    `json:"transcript_length,omitempty"`
}

// UpstreamResult pairs the HTTP status with the decoded body. Body is only
// populated for statuses that carry a JSON payload.
type UpstreamResult struct {
	Status int
	Body   SummarizeResponse
}

// Outcome names the branch that produced the final reply.
type Outcome string

const (
	OutcomeNone             Outcome = ""
	OutcomeSummary          Outcome = "summary"
	OutcomeNoSubtitles      Outcome = "no_subtitles"
	OutcomeSummaryFailed    Outcome = "summary_failed"
	OutcomeRemoteError      Outcome = "remote_error"
	OutcomeUnknownError     Outcome = "unknown_error"
	OutcomeServerError      Outcome = "server_error"
	OutcomeTimeout          Outcome = "timeout"
	OutcomeUnreachable      Outcome = "unreachable"
	OutcomeConnectionFailed Outcome = "connection_failed"
)

// Result describes what Handle did with a message.
type Result struct {
	EventID string  `json:"eventId"`
	Matched bool    `json:"matched"`
	VideoID string  `json:"videoId,omitempty"`
	Outcome Outcome `json:"outcome,omitempty"`
}

// Replier delivers a reply back into the chat the message came from.
type Replier interface {
	Reply(ctx context.Context, text string) error
}

// ReplierFunc adapts a function to the Replier interface.
type ReplierFunc func(ctx context.Context, text string) error

// Reply implements Replier.
func (f ReplierFunc) Reply(ctx context.Context, text string) error {
	return f(ctx, text)
}

// UpstreamClient issues the single summarization call.
type UpstreamClient interface {
	Summarize(ctx context.Context, req SummarizeRequest) (UpstreamResult, error)
}
