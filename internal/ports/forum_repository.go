package ports

import (
	"context"

	"github.com/bnema/rooftop/internal/domain"
)

// ForumRepository is the process-wide, append-only forum store. All
// sessions observe the same post sequence; implementations must be safe
// for concurrent use.
type ForumRepository interface {
	AddPost(ctx context.Context, post domain.Post) error
	AddReply(ctx context.Context, index int, reply domain.Reply) error
	ListPosts(ctx context.Context) ([]domain.Post, error)
	CountPosts(ctx context.Context) (int, error)
}
