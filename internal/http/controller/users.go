package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feed_demo/internal/http/dto"
)

func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, dto.UsersResponse{Users: h.svc.Users()})
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.svc.User(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) ListUserPosts(c *gin.Context) {
	user, posts, err := h.svc.UserPosts(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserPostsResponse{User: user, Posts: posts})
}
