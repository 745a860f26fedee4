package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"feed_demo/internal/domain"
	"feed_demo/internal/http/dto"
	"feed_demo/internal/http/resp"
	"feed_demo/internal/model"
	"feed_demo/internal/sse"
)

const defaultHeartbeat = 15 * time.Second

// Stream serves the events of one topic. The first frame is a snapshot of
// the topic's current state.
func (h *Handler) Stream(c *gin.Context) {
	topic := c.Param("topic")
	if !domain.IsValidTopic(topic) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: resp.CodeNotFound, Message: "topic must be one of: posts, notifications"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		h.log.Error("streaming unsupported", zap.String("topic", topic))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "streaming unsupported"})
		return
	}

	client := &sse.Client{
		Topic: topic,
		Ch:    make(chan model.Event, 16),
	}
	if !h.hub.Register(client) {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Code: resp.CodeUnavailable, Message: "server is shutting down"})
		return
	}
	defer h.hub.Unregister(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	// Events queued between Register and this read are already part of the
	// snapshot and are skipped below.
	state, seq := h.svc.TopicState(topic)
	snapshot := model.Event{
		Seq:       seq,
		Topic:     topic,
		Type:      domain.EventSnapshot,
		Data:      state,
		CreatedAt: time.Now().UTC(),
	}
	if err := sse.WriteEvent(c.Writer, snapshot); err != nil {
		h.log.Error("write snapshot failed", zap.String("topic", topic), zap.Error(err))
		return
	}
	flusher.Flush()

	interval := h.cfg.SSEHeartbeat
	if interval <= 0 {
		interval = defaultHeartbeat
	}
	heartbeat := time.NewTicker(interval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-heartbeat.C:
			if err := sse.WriteHeartbeat(c.Writer); err != nil {
				h.log.Error("heartbeat write failed", zap.String("topic", topic), zap.Error(err))
				return
			}
			flusher.Flush()
		case event, ok := <-client.Ch:
			if !ok {
				return
			}
			if event.Seq <= snapshot.Seq {
				continue
			}
			if err := sse.WriteEvent(c.Writer, event); err != nil {
				h.log.Error("write event failed", zap.String("topic", topic), zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}
