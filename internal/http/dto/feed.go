package dto

import (
	"feed_demo/internal/model"
	"feed_demo/internal/service/feed"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreatePostRequest struct {
	Title    string `json:"title"`
	AuthorID string `json:"author_id"`
	Content  string `json:"content"`
}

type EditPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ReactionRequest struct {
	Reaction string `json:"reaction"`
}

type PublishCommandRequest = model.Command

type UsersResponse struct {
	Users []model.User `json:"users"`
}

type PostsResponse struct {
	Posts []feed.PostView `json:"posts"`
}

type UserPostsResponse struct {
	User  model.User      `json:"user"`
	Posts []feed.PostView `json:"posts"`
}

type NotificationsResponse struct {
	Notifications []model.Notification `json:"notifications"`
}

type RefreshResponse struct {
	Generated     bool                 `json:"generated"`
	Notifications []model.Notification `json:"notifications"`
}
