package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/linkrelay/internal/domain/relay"
)

// Handler wires the chat host webhook to the relay domain.
type Handler struct {
	relaySvc relay.Service
	logger   *slog.Logger
}

// MessageResponse is returned by the synchronous webhook.
type MessageResponse struct {
	relay.Result
	Replies []string `json:"replies"`
}

// NewHandler constructs the root HTTP handler.
func NewHandler(relaySvc relay.Service, logger *slog.Logger) *Handler {
	return &Handler{
		relaySvc: relaySvc,
		logger:   logger.With("component", "http.handler"),
	}
}

// HandleMessage runs the relay to completion and returns every reply at once.
func (h *Handler) HandleMessage(c *gin.Context) {
	var msg relay.IncomingMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	replier := &collectingReplier{}
	result, err := h.relaySvc.Handle(c.Request.Context(), msg, replier)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "relay_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Result: result, Replies: replier.collected()})
}

// HandleMessageStream streams replies using Server-Sent Events so the
// acknowledgement reaches the host before the summarization call resolves.
func (h *Handler) HandleMessageStream(c *gin.Context) {
	var msg relay.IncomingMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "stream_unsupported", "streaming not supported", nil))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	replier := &sseReplier{w: c.Writer, flusher: flusher}
	result, err := h.relaySvc.Handle(c.Request.Context(), msg, replier)
	if err != nil {
		h.logger.Warn("stream reply not delivered", "event_id", result.EventID, "error", err)
		return
	}
	if err := replier.done(result); err != nil {
		h.logger.Warn("stream completion not delivered", "event_id", result.EventID, "error", err)
	}
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
