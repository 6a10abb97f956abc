package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/rooftop/internal/domain"
	"github.com/bnema/rooftop/internal/ports"
)

// ForumRepository is the in-memory, process-wide forum store. One lock
// guards the single append-only post sequence shared by every session.
// Nothing is persisted; the forum starts empty on every run.
type ForumRepository struct {
	mu    sync.RWMutex
	posts []domain.Post
}

var _ ports.ForumRepository = (*ForumRepository)(nil)

func NewForumRepository() *ForumRepository {
	return &ForumRepository{}
}

func (r *ForumRepository) AddPost(ctx context.Context, post domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = append(r.posts, post.Clone())

	return nil
}

func (r *ForumRepository) AddReply(ctx context.Context, index int, reply domain.Reply) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.posts) {
		return fmt.Errorf("%w: %d", domain.ErrPostIndexOutOfRange, index)
	}

	r.posts[index].Replies = append(r.posts[index].Replies, reply)

	return nil
}

func (r *ForumRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]domain.Post, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, post.Clone())
	}

	return posts, nil
}

func (r *ForumRepository) CountPosts(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.posts), nil
}
