package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"feed_demo/internal/domain"
	"feed_demo/internal/metrics"
	"feed_demo/internal/model"
	"feed_demo/internal/sse"
	"feed_demo/internal/state"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) SaveSnapshot(ctx context.Context, snapshot model.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *repoMock) LoadSnapshot(ctx context.Context) (model.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Snapshot), args.Error(1)
}

func newService(t *testing.T, repo *repoMock, hub *sse.Hub) *Service {
	t.Helper()
	store := state.New(domain.Seed(), state.NewSequenceGenerator("p", 1), state.NewSequenceGenerator("n", 1))
	return NewService(store, repo, hub, metrics.New(), zap.NewNop())
}

func runHub(t *testing.T) *sse.Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := sse.NewHub()
	go hub.Run(ctx)
	return hub
}

func subscribe(t *testing.T, hub *sse.Hub, topic string) *sse.Client {
	t.Helper()
	client := &sse.Client{Topic: topic, Ch: make(chan model.Event, 4)}
	hub.Register(client)
	return client
}

func expectEvent(t *testing.T, client *sse.Client, eventType string) model.Event {
	t.Helper()
	select {
	case ev := <-client.Ch:
		require.Equal(t, eventType, ev.Type)
		return ev
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("expected %s event", eventType)
		return model.Event{}
	}
}

func TestServiceAddPost(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		repo := &repoMock{}
		svc := newService(t, repo, sse.NewHub())

		for _, in := range []NewPost{
			{Title: "", AuthorID: "1", Content: "c"},
			{Title: "t", AuthorID: "1", Content: "   "},
			{Title: "t", AuthorID: "", Content: "c"},
		} {
			_, err := svc.AddPost(context.Background(), in)
			require.ErrorIs(t, err, domain.ErrInvalidPost)
		}
		require.Len(t, svc.Posts(), 3)
		repo.AssertNotCalled(t, "SaveSnapshot", mock.Anything, mock.Anything)
	})

	t.Run("persists and broadcasts", func(t *testing.T) {
		hub := runHub(t)
		client := subscribe(t, hub, domain.TopicPosts)

		repo := &repoMock{}
		repo.On("SaveSnapshot", mock.Anything, mock.MatchedBy(func(s model.Snapshot) bool {
			return len(s.Posts) == 4 && s.Posts[1].ID == "p1"
		})).Return(nil).Once()
		svc := newService(t, repo, hub)

		created, err := svc.AddPost(context.Background(), NewPost{Title: "T", AuthorID: "2", Content: "C"})
		require.NoError(t, err)
		require.Equal(t, "p1", created.ID)
		require.Equal(t, "Bob", created.AuthorName)
		repo.AssertExpectations(t)

		ev := expectEvent(t, client, domain.EventPostCreated)
		require.Equal(t, domain.TopicPosts, ev.Topic)
		require.Equal(t, created, ev.Data)
	})

	t.Run("snapshot failure does not fail the call", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("SaveSnapshot", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
		svc := newService(t, repo, sse.NewHub())

		created, err := svc.AddPost(context.Background(), NewPost{Title: "T", AuthorID: "1", Content: "C"})
		require.NoError(t, err)
		_, err = svc.Post(created.ID)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestServiceEditPost(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := &repoMock{}
		svc := newService(t, repo, sse.NewHub())

		_, err := svc.EditPost(context.Background(), "missing", "t", "c")
		require.ErrorIs(t, err, domain.ErrPostNotFound)
		repo.AssertNotCalled(t, "SaveSnapshot", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		hub := runHub(t)
		client := subscribe(t, hub, domain.TopicPosts)
		repo := &repoMock{}
		repo.On("SaveSnapshot", mock.Anything, mock.Anything).Return(nil).Once()
		svc := newService(t, repo, hub)

		updated, err := svc.EditPost(context.Background(), "102", "Edited", "Body")
		require.NoError(t, err)
		require.Equal(t, "Edited", updated.Title)
		require.Equal(t, "2", updated.AuthorID)
		repo.AssertExpectations(t)
		expectEvent(t, client, domain.EventPostUpdated)
	})
}

func TestServiceAddReaction(t *testing.T) {
	t.Run("rejections leave state and repository untouched", func(t *testing.T) {
		repo := &repoMock{}
		svc := newService(t, repo, sse.NewHub())
		before := svc.Snapshot()

		_, err := svc.AddReaction(context.Background(), "101", domain.ReactionSad)
		require.ErrorIs(t, err, domain.ErrReactionDisabled)
		_, err = svc.AddReaction(context.Background(), "101", "meh")
		require.ErrorIs(t, err, domain.ErrUnknownReaction)
		_, err = svc.AddReaction(context.Background(), "nope", domain.ReactionLike)
		require.ErrorIs(t, err, domain.ErrPostNotFound)

		require.Equal(t, before, svc.Snapshot())
		repo.AssertNotCalled(t, "SaveSnapshot", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		hub := runHub(t)
		client := subscribe(t, hub, domain.TopicPosts)
		repo := &repoMock{}
		repo.On("SaveSnapshot", mock.Anything, mock.Anything).Return(nil).Once()
		svc := newService(t, repo, hub)

		updated, err := svc.AddReaction(context.Background(), "103", domain.ReactionWow)
		require.NoError(t, err)
		require.Equal(t, 1, updated.Reactions[domain.ReactionWow])
		require.Equal(t, "Charlie", updated.AuthorName)
		repo.AssertExpectations(t)
		expectEvent(t, client, domain.EventReactionAdded)
	})
}

func TestServiceRefreshNotifications(t *testing.T) {
	hub := runHub(t)
	client := subscribe(t, hub, domain.TopicNotifications)
	repo := &repoMock{}
	repo.On("SaveSnapshot", mock.Anything, mock.Anything).Return(nil).Once()
	svc := newService(t, repo, hub)

	first, generated := svc.RefreshNotifications(context.Background())
	require.True(t, generated)
	require.Len(t, first, 3)
	expectEvent(t, client, domain.EventNotificationsRefreshed)

	second, generated := svc.RefreshNotifications(context.Background())
	require.False(t, generated)
	require.Equal(t, first, second)

	repo.AssertExpectations(t)
	select {
	case ev := <-client.Ch:
		t.Fatalf("unexpected event %s", ev.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestServiceReads(t *testing.T) {
	svc := newService(t, &repoMock{}, sse.NewHub())

	require.Len(t, svc.Users(), 3)
	_, err := svc.User("9")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	user, posts, err := svc.UserPosts("1")
	require.NoError(t, err)
	require.Equal(t, "Alice", user.Name)
	require.Len(t, posts, 1)
	require.Equal(t, "Alice", posts[0].AuthorName)

	_, _, err = svc.UserPosts("9")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Post("nope")
	require.ErrorIs(t, err, domain.ErrPostNotFound)
	require.Empty(t, svc.Notifications())
	require.Equal(t, "Unknown", svc.UserName("9"))
}

func TestServiceApply(t *testing.T) {
	repo := &repoMock{}
	repo.On("SaveSnapshot", mock.Anything, mock.Anything).Return(nil).Times(3)
	svc := newService(t, repo, sse.NewHub())
	ctx := context.Background()

	require.NoError(t, svc.Apply(ctx, model.Command{Type: domain.CommandAddPost, Title: "T", AuthorID: "3", Content: "C"}))
	require.NoError(t, svc.Apply(ctx, model.Command{Type: domain.CommandEditPost, PostID: "101", Title: "New", Content: "Body"}))
	require.NoError(t, svc.Apply(ctx, model.Command{Type: domain.CommandAddReaction, PostID: "101", Reaction: domain.ReactionHaha}))

	post, err := svc.Post("101")
	require.NoError(t, err)
	require.Equal(t, "New", post.Title)
	require.Equal(t, 1, post.Reactions[domain.ReactionHaha])
	require.Len(t, svc.Posts(), 4)

	require.ErrorIs(t, svc.Apply(ctx, model.Command{Type: "post.delete"}), domain.ErrInvalidCommandType)
	require.ErrorIs(t, svc.Apply(ctx, model.Command{Type: domain.CommandAddReaction, PostID: "101", Reaction: domain.ReactionSad}), domain.ErrReactionDisabled)
	require.ErrorIs(t, svc.Apply(ctx, model.Command{Type: domain.CommandEditPost, PostID: "404", Title: "x", Content: "y"}), domain.ErrPostNotFound)
	repo.AssertExpectations(t)
}

func TestServiceEventsFollowStateOrder(t *testing.T) {
	const writers = 8

	for round := 0; round < 20; round++ {
		hub := runHub(t)
		client := &sse.Client{Topic: domain.TopicPosts, Ch: make(chan model.Event, writers)}
		hub.Register(client)

		repo := &repoMock{}
		repo.On("SaveSnapshot", mock.Anything, mock.Anything).Return(nil)
		svc := newService(t, repo, hub)

		errs := make(chan error, writers)
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.AddReaction(context.Background(), "101", domain.ReactionLike)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		var lastSeq int64
		for want := 1; want <= writers; want++ {
			ev := expectEvent(t, client, domain.EventReactionAdded)
			require.Greater(t, ev.Seq, lastSeq)
			lastSeq = ev.Seq
			require.Equal(t, want, ev.Data.(PostView).Reactions[domain.ReactionLike], "round %d", round)
		}
	}
}

func TestServiceTopicState(t *testing.T) {
	hub := runHub(t)
	client := subscribe(t, hub, domain.TopicPosts)
	repo := &repoMock{}
	repo.On("SaveSnapshot", mock.Anything, mock.Anything).Return(nil)
	svc := newService(t, repo, hub)

	state, seq := svc.TopicState(domain.TopicNotifications)
	require.Equal(t, int64(0), seq)
	require.Empty(t, state)

	_, err := svc.AddReaction(context.Background(), "102", domain.ReactionWow)
	require.NoError(t, err)
	ev := expectEvent(t, client, domain.EventReactionAdded)

	state, seq = svc.TopicState(domain.TopicPosts)
	require.Equal(t, ev.Seq, seq)
	posts := state.([]PostView)
	require.Equal(t, 1, posts[1].Reactions[domain.ReactionWow])
}
