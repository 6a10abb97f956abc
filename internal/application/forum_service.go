package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/rooftop/internal/domain"
	"github.com/bnema/rooftop/internal/ports"
)

// ForumService applies the forum state transitions: append a post,
// append a reply, toggle a reply panel. Post and reply content lives in
// the shared repository; reply-panel visibility is per-session state.
type ForumService struct {
	repo  ports.ForumRepository
	clock ports.Clock
}

func NewForumService(repo ports.ForumRepository, clock ports.Clock) *ForumService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ForumService{
		repo:  repo,
		clock: clock,
	}
}

// AddPost appends a new post with no replies. Blank author or content
// (after trimming) is rejected and no post is created.
func (s *ForumService) AddPost(ctx context.Context, author, content string) error {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)
	if author == "" || content == "" {
		return fmt.Errorf("%w: post author and content are required", domain.ErrEmptyField)
	}

	post := domain.Post{
		Author:    author,
		Content:   content,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.AddPost(ctx, post); err != nil {
		return fmt.Errorf("add post: %w", err)
	}

	return nil
}

// AddReply appends a reply to the post at the given index and closes
// that post's reply panel on the session.
func (s *ForumService) AddReply(ctx context.Context, session *domain.Session, index int, author, content string) error {
	if err := s.checkIndex(ctx, index); err != nil {
		return err
	}

	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)
	if author == "" || content == "" {
		return fmt.Errorf("%w: reply author and content are required", domain.ErrEmptyField)
	}

	reply := domain.Reply{
		Author:    author,
		Content:   content,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.AddReply(ctx, index, reply); err != nil {
		return fmt.Errorf("add reply: %w", err)
	}

	session.ReplyPanelOpen[index] = false

	return nil
}

// ToggleReplyPanel flips the reply-form visibility for the post at the
// given index. Absent entries default to closed before flipping.
func (s *ForumService) ToggleReplyPanel(ctx context.Context, session *domain.Session, index int) error {
	if err := s.checkIndex(ctx, index); err != nil {
		return err
	}

	session.ReplyPanelOpen[index] = !session.ReplyPanelOpen[index]

	return nil
}

// ListPosts returns all posts in insertion order, each carrying its
// replies in insertion order. The returned slice is a copy; mutating it
// does not affect the store.
func (s *ForumService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

func (s *ForumService) checkIndex(ctx context.Context, index int) error {
	count, err := s.repo.CountPosts(ctx)
	if err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if index < 0 || index >= count {
		return fmt.Errorf("%w: %d", domain.ErrPostIndexOutOfRange, index)
	}

	return nil
}
