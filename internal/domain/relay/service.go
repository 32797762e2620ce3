package relay

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/linkrelay/pkg/errors"
	"github.com/yanqian/linkrelay/pkg/metrics"
	"github.com/yanqian/linkrelay/pkg/util"
)

// Service relays chat messages carrying YouTube links to the summarization endpoint.
type Service interface {
	Handle(ctx context.Context, msg IncomingMessage, replier Replier) (Result, error)
}

type service struct {
	cfg     Config
	client  UpstreamClient
	metrics *metrics.Relay
	logger  *slog.Logger
}

// NewService is a wire provider for the relay domain.
func NewService(cfg Config, client UpstreamClient, m *metrics.Relay, logger *slog.Logger) Service {
	return &service{cfg: cfg, client: client, metrics: m, logger: logger.With("component", "relay.service")}
}

// Handle inspects one chat message. Messages without a link are ignored.
// Remote failures are converted into replies; the returned error is non-nil
// only when the replier could not deliver a reply.
func (s *service) Handle(ctx context.Context, msg IncomingMessage, replier Replier) (Result, error) {
	result := Result{EventID: uuid.NewString()}

	matched := ContainsLink(msg.Text) && roomAllowed(s.cfg.Rooms, msg.Room)
	s.metrics.ObserveMessage(matched)
	if !matched {
		return result, nil
	}
	result.Matched = true
	result.VideoID = VideoID(msg.Text)

	logger := s.logger.With("event_id", result.EventID, "room", msg.Room, "video_id", result.VideoID)
	logger.Info("youtube link detected", "sender", msg.Sender, "group_chat", msg.IsGroupChat)

	if err := s.reply(ctx, replier, ackReply); err != nil {
		logger.Error("ack reply failed", "error", err)
		return result, err
	}

	outcome, text := s.summarize(ctx, logger, msg)
	result.Outcome = outcome
	s.metrics.ObserveOutcome(string(outcome))

	if err := s.reply(ctx, replier, text); err != nil {
		logger.Error("final reply failed", "outcome", outcome, "error", err)
		return result, err
	}
	logger.Info("relay finished", "outcome", outcome)
	return result, nil
}

func (s *service) summarize(ctx context.Context, logger *slog.Logger, msg IncomingMessage) (Outcome, string) {
	req := SummarizeRequest{Msg: msg.Text, Sender: msg.Sender, Room: msg.Room}

	start := util.NowUTC()
	upstream, err := s.client.Summarize(ctx, req)
	elapsed := util.Elapsed(start)
	if err != nil {
		s.metrics.ObserveUpstream("error", elapsed)
		outcome, text := describeFailure(err)
		logger.Warn("summarization call failed", "outcome", outcome, "code", apperrors.CodeOf(err), "latency_ms", elapsed.Milliseconds(), "error", err)
		return outcome, text
	}
	s.metrics.ObserveUpstream(strconv.Itoa(upstream.Status), elapsed)

	switch upstream.Status {
	case http.StatusOK, http.StatusBadRequest:
		logger.Debug("summarization response received", "status", upstream.Status, "title", upstream.Body.VideoTitle, "language", upstream.Body.Language, "transcript_length", upstream.Body.TranscriptLength)
		return interpret(upstream.Body)
	default:
		logger.Warn("summarization endpoint returned unexpected status", "status", upstream.Status, "latency_ms", elapsed.Milliseconds())
		return OutcomeServerError, serverErrorReply(upstream.Status)
	}
}

func (s *service) reply(ctx context.Context, replier Replier, text string) error {
	if err := replier.Reply(ctx, text); err != nil {
		return apperrors.Wrap(apperrors.CodeReplyFailed, "deliver reply", err)
	}
	s.metrics.ObserveReply()
	return nil
}
