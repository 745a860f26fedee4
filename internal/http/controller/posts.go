package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feed_demo/internal/http/dto"
	"feed_demo/internal/service/feed"
)

func (h *Handler) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PostsResponse{Posts: h.svc.Posts()})
}

func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.svc.Post(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	created, err := h.svc.AddPost(c.Request.Context(), feed.NewPost{
		Title:    req.Title,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) EditPost(c *gin.Context) {
	var req dto.EditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	updated, err := h.svc.EditPost(c.Request.Context(), c.Param("id"), req.Title, req.Content)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) AddReaction(c *gin.Context) {
	var req dto.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	if req.Reaction == "" {
		badRequest(c, "reaction is required")
		return
	}
	updated, err := h.svc.AddReaction(c.Request.Context(), c.Param("id"), req.Reaction)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
