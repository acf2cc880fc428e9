package app

import (
	"context"
	"strings"
	"time"

	"justice-play/internal/domain"

	"github.com/google/uuid"
)

// PostRepository stores community posts. List returns newest first.
type PostRepository interface {
	List(ctx context.Context, limit int) ([]domain.Post, error)
	Create(ctx context.Context, post domain.Post) error
	ToggleLike(ctx context.Context, postID, userID string) (domain.Post, error)
}

// CommunityFeed is the shared message board.
type CommunityFeed struct {
	posts    PostRepository
	profiles *ProfileStore
	now      func() time.Time
}

func NewCommunityFeed(posts PostRepository, profiles *ProfileStore) *CommunityFeed {
	return &CommunityFeed{posts: posts, profiles: profiles, now: time.Now}
}

// List returns up to limit posts, newest first.
func (f *CommunityFeed) List(ctx context.Context, limit int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = 50
	}
	return f.posts.List(ctx, limit)
}

// Create publishes a message under the user's display name.
func (f *CommunityFeed) Create(ctx context.Context, userID, message string) (domain.Post, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.Post{}, domain.ErrEmptyMessage
	}
	profile, err := f.profiles.Profile(userID)
	if err != nil {
		return domain.Post{}, err
	}
	author := profile.DisplayName
	if author == "" {
		author = "Anonymous"
	}
	post := domain.Post{
		ID:        uuid.NewString(),
		Author:    author,
		Message:   message,
		CreatedAt: f.now(),
	}
	if err := f.posts.Create(ctx, post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// ToggleLike likes the post, or removes the like when the user already liked it.
func (f *CommunityFeed) ToggleLike(ctx context.Context, userID, postID string) (domain.Post, error) {
	if !f.profiles.Active(userID) {
		return domain.Post{}, domain.ErrNotAuthenticated
	}
	return f.posts.ToggleLike(ctx, postID, userID)
}

// SamplePosts seeds an empty feed.
func SamplePosts(now time.Time) []domain.Post {
	day := 24 * time.Hour
	return []domain.Post{
		{
			ID:        "1",
			Author:    "Teacher Mary",
			Message:   "Just a reminder that every child has the right to express their opinions about matters that affect them. Article 12 of the UN Convention on the Rights of the Child protects this right!",
			Likes:     15,
			Comments:  3,
			CreatedAt: now.Add(-2 * day),
		},
		{
			ID:        "2",
			Author:    "Rights Champion",
			Message:   "Today at school we had a debate about children's rights to privacy. It was interesting to learn that even kids have the right to keep some things private!",
			Likes:     8,
			Comments:  5,
			CreatedAt: now.Add(-3 * day),
		},
		{
			ID:        "3",
			Author:    "Justice Educator",
			Message:   "Did you know? The UN Convention on the Rights of the Child is the most widely ratified human rights treaty in history! It sets out the civil, political, economic, social, health and cultural rights of children.",
			Likes:     22,
			Comments:  7,
			CreatedAt: now.Add(-7 * day),
		},
	}
}
