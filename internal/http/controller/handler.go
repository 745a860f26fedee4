package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"feed_demo/internal/config"
	"feed_demo/internal/domain"
	"feed_demo/internal/http/dto"
	"feed_demo/internal/http/resp"
	"feed_demo/internal/queue"
	"feed_demo/internal/service/feed"
	"feed_demo/internal/sse"
)

type Handler struct {
	cfg *config.Config
	svc *feed.Service
	hub *sse.Hub
	log *zap.Logger
	pub queue.Publisher
}

func NewHandler(cfg *config.Config, svc *feed.Service, hub *sse.Hub, logger *zap.Logger, publisher queue.Publisher) *Handler {
	return &Handler{cfg: cfg, svc: svc, hub: hub, log: logger, pub: publisher}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: message})
}

// writeError maps feed errors to responses. Anything unrecognised is a 500.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: resp.CodeNotFound, Message: "Post not found"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: resp.CodeNotFound, Message: "User not found"})
	case errors.Is(err, domain.ErrReactionDisabled):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Code: resp.CodeReactionDisabled, Message: "reaction is disabled"})
	case errors.Is(err, domain.ErrUnknownReaction):
		badRequest(c, "reaction must be one of: like, love, haha, wow, sad")
	case errors.Is(err, domain.ErrInvalidPost):
		badRequest(c, "title, author_id, content are required")
	case errors.Is(err, domain.ErrInvalidCommand), errors.Is(err, domain.ErrInvalidCommandType):
		badRequest(c, err.Error())
	default:
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "internal error"})
	}
}
