package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feed_demo/internal/http/dto"
)

func (h *Handler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NotificationsResponse{Notifications: h.svc.Notifications()})
}

func (h *Handler) RefreshNotifications(c *gin.Context) {
	notifications, generated := h.svc.RefreshNotifications(c.Request.Context())
	c.JSON(http.StatusOK, dto.RefreshResponse{Generated: generated, Notifications: notifications})
}
