package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rooftop/internal/adapters/repo/memory"
	"github.com/bnema/rooftop/internal/domain"
)

func newForumFixture(t *testing.T) (*ForumService, *domain.Session) {
	t.Helper()

	clock := fixedClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	return NewForumService(memory.NewForumRepository(), clock), domain.NewSession()
}

func TestForumServiceAddPostRoundTrip(t *testing.T) {
	t.Parallel()

	service, _ := newForumFixture(t)
	ctx := context.Background()

	require.NoError(t, service.AddPost(ctx, "alice", "hello"))

	posts, err := service.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "alice", posts[0].Author)
	assert.Equal(t, "hello", posts[0].Content)
	assert.Empty(t, posts[0].Replies)
	assert.False(t, posts[0].CreatedAt.IsZero())
}

func TestForumServiceAddPostRejectsBlankFields(t *testing.T) {
	t.Parallel()

	service, _ := newForumFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		author  string
		content string
	}{
		{name: "empty author", author: "", content: "x"},
		{name: "empty content", author: "alice", content: ""},
		{name: "whitespace only", author: "   ", content: "\n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.AddPost(ctx, tt.author, tt.content)
			require.ErrorIs(t, err, domain.ErrEmptyField)
		})
	}

	posts, err := service.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestForumServiceAddReplyClosesPanel(t *testing.T) {
	t.Parallel()

	service, session := newForumFixture(t)
	ctx := context.Background()

	require.NoError(t, service.AddPost(ctx, "alice", "hello"))
	require.NoError(t, service.ToggleReplyPanel(ctx, session, 0))
	require.True(t, session.ReplyPanelOpen[0])

	require.NoError(t, service.AddReply(ctx, session, 0, "bob", "hi"))

	assert.False(t, session.ReplyPanelOpen[0])

	posts, err := service.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts[0].Replies, 1)
	assert.Equal(t, "bob", posts[0].Replies[0].Author)
	assert.Equal(t, "hi", posts[0].Replies[0].Content)
}

func TestForumServiceAddReplyOutOfRange(t *testing.T) {
	t.Parallel()

	service, session := newForumFixture(t)
	ctx := context.Background()

	require.NoError(t, service.AddPost(ctx, "alice", "hello"))

	err := service.AddReply(ctx, session, 5, "bob", "hi")
	require.ErrorIs(t, err, domain.ErrPostIndexOutOfRange)
}

func TestForumServiceAddReplyRejectsBlankFields(t *testing.T) {
	t.Parallel()

	service, session := newForumFixture(t)
	ctx := context.Background()

	require.NoError(t, service.AddPost(ctx, "alice", "hello"))

	err := service.AddReply(ctx, session, 0, "", "hi")
	require.ErrorIs(t, err, domain.ErrEmptyField)

	posts, err := service.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts[0].Replies)
}

func TestForumServiceRepliesNeverLeakAcrossPosts(t *testing.T) {
	t.Parallel()

	service, session := newForumFixture(t)
	ctx := context.Background()

	require.NoError(t, service.AddPost(ctx, "alice", "first"))
	require.NoError(t, service.AddPost(ctx, "bob", "second"))
	require.NoError(t, service.AddReply(ctx, session, 1, "carol", "agreed"))

	posts, err := service.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Empty(t, posts[0].Replies)
	assert.Len(t, posts[1].Replies, 1)
}

func TestForumServiceToggleReplyPanel(t *testing.T) {
	t.Parallel()

	service, session := newForumFixture(t)
	ctx := context.Background()

	require.NoError(t, service.AddPost(ctx, "alice", "hello"))

	require.NoError(t, service.ToggleReplyPanel(ctx, session, 0))
	assert.True(t, session.ReplyPanelOpen[0])

	require.NoError(t, service.ToggleReplyPanel(ctx, session, 0))
	assert.False(t, session.ReplyPanelOpen[0])

	err := service.ToggleReplyPanel(ctx, session, 3)
	require.ErrorIs(t, err, domain.ErrPostIndexOutOfRange)
}
