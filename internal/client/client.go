// Package client calls the feed HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"feed_demo/internal/http/dto"
	"feed_demo/internal/model"
	"feed_demo/internal/service/feed"
)

var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var out dto.UsersResponse
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) Posts(ctx context.Context) ([]feed.PostView, error) {
	var out dto.PostsResponse
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

func (c *Client) UserPosts(ctx context.Context, userID string) (dto.UserPostsResponse, error) {
	var out dto.UserPostsResponse
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/posts", nil, &out)
	return out, err
}

func (c *Client) Post(ctx context.Context, id string) (feed.PostView, error) {
	var out feed.PostView
	err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) AddPost(ctx context.Context, req dto.CreatePostRequest) (feed.PostView, error) {
	var out feed.PostView
	err := c.do(ctx, http.MethodPost, "/posts", req, &out)
	return out, err
}

func (c *Client) EditPost(ctx context.Context, id string, req dto.EditPostRequest) (feed.PostView, error) {
	var out feed.PostView
	err := c.do(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), req, &out)
	return out, err
}

func (c *Client) AddReaction(ctx context.Context, id, kind string) (feed.PostView, error) {
	var out feed.PostView
	err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(id)+"/reactions", dto.ReactionRequest{Reaction: kind}, &out)
	return out, err
}

func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	var out dto.NotificationsResponse
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out.Notifications, nil
}

func (c *Client) RefreshNotifications(ctx context.Context) (dto.RefreshResponse, error) {
	var out dto.RefreshResponse
	err := c.do(ctx, http.MethodPost, "/notifications/refresh", nil, &out)
	return out, err
}

func (c *Client) PublishCommand(ctx context.Context, cmd model.Command) error {
	return c.do(ctx, http.MethodPost, "/commands/publish", cmd, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: res.StatusCode}
		var payload dto.ErrorResponse
		if json.NewDecoder(res.Body).Decode(&payload) == nil {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
