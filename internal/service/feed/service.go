package feed

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"feed_demo/internal/domain"
	"feed_demo/internal/metrics"
	"feed_demo/internal/model"
	"feed_demo/internal/repository"
	"feed_demo/internal/sse"
	"feed_demo/internal/state"
)

// Service is the single entry point for feed reads and writes. Successful
// writes are snapshotted to the repository and announced on the hub.
type Service struct {
	store   *state.Store
	repo    repository.SnapshotRepository
	hub     *sse.Hub
	metrics *metrics.Metrics
	log     *zap.Logger

	// writeMu spans mutation, snapshot save and publish, so saves and event
	// sequence numbers follow the order the store changed in.
	writeMu sync.RWMutex
}

func NewService(store *state.Store, repo repository.SnapshotRepository, hub *sse.Hub, m *metrics.Metrics, logger *zap.Logger) *Service {
	m.SetPosts(len(store.Posts()))
	return &Service{store: store, repo: repo, hub: hub, metrics: m, log: logger}
}

type NewPost struct {
	Title    string
	AuthorID string
	Content  string
}

type PostView struct {
	model.Post
	AuthorName string `json:"author_name"`
}

func (s *Service) Users() []model.User {
	return s.store.Users()
}

func (s *Service) User(id string) (model.User, error) {
	u, ok := s.store.User(id)
	if !ok {
		return model.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *Service) UserName(id string) string {
	return s.store.UserName(id)
}

func (s *Service) Posts() []PostView {
	return s.views(s.store.Posts())
}

func (s *Service) Post(id string) (PostView, error) {
	p, ok := s.store.Post(id)
	if !ok {
		return PostView{}, domain.ErrPostNotFound
	}
	return s.view(p), nil
}

// UserPosts fails with ErrUserNotFound for unknown users, unlike the plain
// author filter which would just be empty.
func (s *Service) UserPosts(userID string) (model.User, []PostView, error) {
	u, ok := s.store.User(userID)
	if !ok {
		return model.User{}, nil, domain.ErrUserNotFound
	}
	return u, s.views(s.store.PostsByAuthor(userID)), nil
}

func (s *Service) Notifications() []model.Notification {
	return s.store.Notifications()
}

func (s *Service) Snapshot() model.Snapshot {
	return s.store.Snapshot()
}

// TopicState returns the current state of a stream topic together with the
// sequence number of the last event already reflected in it.
func (s *Service) TopicState(topic string) (any, int64) {
	s.writeMu.RLock()
	defer s.writeMu.RUnlock()
	if topic == domain.TopicNotifications {
		return s.store.Notifications(), s.hub.Seq()
	}
	return s.views(s.store.Posts()), s.hub.Seq()
}

func (s *Service) AddPost(ctx context.Context, in NewPost) (PostView, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" || in.AuthorID == "" {
		s.metrics.Rejected("add_post", "invalid")
		return PostView{}, domain.ErrInvalidPost
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	created := s.store.AddPost(in.Title, in.AuthorID, in.Content)
	view := s.view(created)

	s.metrics.PostCreated(len(s.store.Posts()))
	s.log.Info("post added", zap.String("post_id", created.ID), zap.String("author_id", created.AuthorID))
	s.persist(ctx, "add_post")
	s.hub.Publish(domain.TopicPosts, domain.EventPostCreated, view)
	return view, nil
}

func (s *Service) EditPost(ctx context.Context, postID, title, content string) (PostView, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		s.metrics.Rejected("edit_post", "invalid")
		return PostView{}, domain.ErrInvalidPost
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	updated, err := s.store.EditPost(postID, title, content)
	if err != nil {
		s.reject("edit_post", postID, err)
		return PostView{}, err
	}
	view := s.view(updated)

	s.metrics.PostEdited()
	s.persist(ctx, "edit_post")
	s.hub.Publish(domain.TopicPosts, domain.EventPostUpdated, view)
	return view, nil
}

func (s *Service) AddReaction(ctx context.Context, postID, kind string) (PostView, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	updated, err := s.store.AddReaction(postID, kind)
	if err != nil {
		s.reject("add_reaction", postID, err)
		return PostView{}, err
	}
	view := s.view(updated)

	s.metrics.ReactionAdded(kind)
	s.persist(ctx, "add_reaction")
	s.hub.Publish(domain.TopicPosts, domain.EventReactionAdded, view)
	return view, nil
}

// RefreshNotifications reports whether this call generated the list.
func (s *Service) RefreshNotifications(ctx context.Context) ([]model.Notification, bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	notifications, generated := s.store.RefreshNotifications()
	s.metrics.NotificationsRefreshed(generated)
	if !generated {
		return notifications, false
	}

	s.log.Info("notifications generated", zap.Int("count", len(notifications)))
	s.persist(ctx, "refresh_notifications")
	s.hub.Publish(domain.TopicNotifications, domain.EventNotificationsRefreshed, notifications)
	return notifications, true
}

// persist writes the current state through to the repository. Failures are
// logged and counted; the in-memory store remains authoritative.
func (s *Service) persist(ctx context.Context, operation string) {
	if err := s.repo.SaveSnapshot(ctx, s.store.Snapshot()); err != nil {
		s.metrics.SnapshotSaveFailed()
		s.log.Error("snapshot save failed", zap.String("operation", operation), zap.Error(err))
	}
}

func (s *Service) reject(operation, postID string, err error) {
	reason := "error"
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		reason = "not_found"
	case errors.Is(err, domain.ErrReactionDisabled):
		reason = "disabled"
	case errors.Is(err, domain.ErrUnknownReaction):
		reason = "unknown_reaction"
	}
	s.metrics.Rejected(operation, reason)
	s.log.Debug("mutation rejected",
		zap.String("operation", operation),
		zap.String("post_id", postID),
		zap.String("reason", reason),
	)
}

func (s *Service) view(p model.Post) PostView {
	return PostView{Post: p, AuthorName: s.store.UserName(p.AuthorID)}
}

func (s *Service) views(posts []model.Post) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, s.view(p))
	}
	return out
}

// Apply runs a queued command against the feed.
func (s *Service) Apply(ctx context.Context, cmd model.Command) error {
	if err := domain.ValidateCommand(cmd); err != nil {
		return err
	}
	var err error
	switch cmd.Type {
	case domain.CommandAddPost:
		_, err = s.AddPost(ctx, NewPost{Title: cmd.Title, AuthorID: cmd.AuthorID, Content: cmd.Content})
	case domain.CommandEditPost:
		_, err = s.EditPost(ctx, cmd.PostID, cmd.Title, cmd.Content)
	case domain.CommandAddReaction:
		_, err = s.AddReaction(ctx, cmd.PostID, cmd.Reaction)
	}
	return err
}
