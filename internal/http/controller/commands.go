package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"feed_demo/internal/domain"
	"feed_demo/internal/http/dto"
	"feed_demo/internal/http/resp"
)

// PublishCommand queues a feed mutation instead of applying it inline.
func (h *Handler) PublishCommand(c *gin.Context) {
	var req dto.PublishCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	if err := domain.ValidateCommand(req); err != nil {
		h.writeError(c, err)
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		h.log.Error("publish payload marshal failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to publish command"})
		return
	}

	prefix := h.cfg.RabbitPublishPrefix
	if prefix == "" {
		prefix = "command"
	}
	routingKey := prefix + "." + req.Type
	if err := h.pub.Publish(c.Request.Context(), payload, routingKey); err != nil {
		h.log.Error("publish command failed",
			zap.String("type", req.Type),
			zap.String("post_id", req.PostID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to publish command"})
		return
	}

	c.JSON(http.StatusAccepted, dto.StatusResponse{Code: resp.CodeQueued, Message: "queued"})
}
