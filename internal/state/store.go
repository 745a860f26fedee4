package state

import (
	"fmt"
	"sync"

	"feed_demo/internal/domain"
	"feed_demo/internal/model"
)

// notificationSourcePosts is how many leading posts a refresh reports on.
const notificationSourcePosts = 3

// Store owns the users, posts and notifications of the feed.
//
// Writers replace the slice they change instead of mutating it, so every
// slice or post handed out by a read stays valid after later writes.
type Store struct {
	mu              sync.RWMutex
	users           []model.User
	posts           []model.Post
	notifications   []model.Notification
	postIDs         IDGenerator
	notificationIDs IDGenerator
}

func New(initial model.Snapshot, postIDs, notificationIDs IDGenerator) *Store {
	s := &Store{
		users:           append([]model.User(nil), initial.Users...),
		posts:           make([]model.Post, 0, len(initial.Posts)),
		notifications:   append([]model.Notification{}, initial.Notifications...),
		postIDs:         postIDs,
		notificationIDs: notificationIDs,
	}
	for _, post := range initial.Posts {
		post = post.Clone()
		if post.Reactions == nil {
			post.Reactions = domain.NewReactions()
		}
		s.posts = append(s.posts, post)
	}
	return s
}

func (s *Store) UserName(userID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userNameLocked(userID)
}

func (s *Store) userNameLocked(userID string) string {
	for _, u := range s.users {
		if u.ID == userID {
			return u.Name
		}
	}
	return domain.UnknownUserName
}

func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User{}, s.users...)
}

func (s *Store) User(userID string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == userID {
			return u, true
		}
	}
	return model.User{}, false
}

func (s *Store) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

func (s *Store) Post(postID string) (model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOfLocked(postID); i >= 0 {
		return s.posts[i].Clone(), true
	}
	return model.Post{}, false
}

// PostsByAuthor keeps store order.
func (s *Store) PostsByAuthor(userID string) []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []model.Post
	for _, p := range s.posts {
		if p.AuthorID == userID {
			result = append(result, p.Clone())
		}
	}
	return result
}

func (s *Store) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Notification{}, s.notifications...)
}

func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.Snapshot{
		Users:         append([]model.User{}, s.users...),
		Posts:         clonePosts(s.posts),
		Notifications: append([]model.Notification{}, s.notifications...),
	}
}

// AddPost inserts a new post right after the first one. On an empty feed it
// becomes the only post.
func (s *Store) AddPost(title, authorID, content string) model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := model.Post{
		ID:        s.postIDs.NewID(),
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		Reactions: domain.NewReactions(),
	}

	at := min(1, len(s.posts))
	next := make([]model.Post, 0, len(s.posts)+1)
	next = append(next, s.posts[:at]...)
	next = append(next, post)
	next = append(next, s.posts[at:]...)
	s.posts = next

	return post.Clone()
}

// EditPost replaces title and content only.
func (s *Store) EditPost(postID, title, content string) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(postID)
	if i < 0 {
		return model.Post{}, fmt.Errorf("edit %q: %w", postID, domain.ErrPostNotFound)
	}
	updated := s.posts[i]
	updated.Title = title
	updated.Content = content
	s.replaceLocked(i, updated)
	return updated.Clone(), nil
}

// AddReaction increments one counter of the post. The disabled reaction is
// rejected before anything else is looked at.
func (s *Store) AddReaction(postID, kind string) (model.Post, error) {
	if domain.IsDisabledReaction(kind) {
		return model.Post{}, fmt.Errorf("react %q on %q: %w", kind, postID, domain.ErrReactionDisabled)
	}
	if !domain.IsValidReaction(kind) {
		return model.Post{}, fmt.Errorf("react %q on %q: %w", kind, postID, domain.ErrUnknownReaction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(postID)
	if i < 0 {
		return model.Post{}, fmt.Errorf("react %q on %q: %w", kind, postID, domain.ErrPostNotFound)
	}
	updated := s.posts[i].Clone()
	updated.Reactions[kind]++
	s.replaceLocked(i, updated)
	return updated.Clone(), nil
}

// RefreshNotifications fills the notification list from the first posts the
// first time it runs. Once populated it returns the existing list and false.
func (s *Store) RefreshNotifications() ([]model.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.notifications) > 0 {
		return append([]model.Notification{}, s.notifications...), false
	}

	n := min(notificationSourcePosts, len(s.posts))
	generated := make([]model.Notification, 0, n)
	for _, post := range s.posts[:n] {
		generated = append(generated, model.Notification{
			ID:   s.notificationIDs.NewID(),
			Text: fmt.Sprintf("Post \"%s\" by %s", post.Title, s.userNameLocked(post.AuthorID)),
		})
	}
	s.notifications = generated
	return append([]model.Notification{}, generated...), len(generated) > 0
}

func (s *Store) indexOfLocked(postID string) int {
	for i, p := range s.posts {
		if p.ID == postID {
			return i
		}
	}
	return -1
}

func (s *Store) replaceLocked(i int, post model.Post) {
	next := append([]model.Post(nil), s.posts...)
	next[i] = post
	s.posts = next
}

func clonePosts(posts []model.Post) []model.Post {
	out := make([]model.Post, len(posts))
	for i, p := range posts {
		out[i] = p.Clone()
	}
	return out
}
