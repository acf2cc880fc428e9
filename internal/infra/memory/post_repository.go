package memory

import (
	"context"
	"sort"
	"sync"

	"justice-play/internal/domain"
)

// PostRepository is an in-memory app.PostRepository.
type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]domain.Post
}

// NewPostRepository returns a repository seeded with the given posts.
func NewPostRepository(seed []domain.Post) *PostRepository {
	r := &PostRepository{posts: make(map[string]domain.Post, len(seed))}
	for _, p := range seed {
		r.posts[p.ID] = p
	}
	return r
}

func (r *PostRepository) List(_ context.Context, limit int) ([]domain.Post, error) {
	r.mu.RLock()
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		p.LikedBy = append([]string(nil), p.LikedBy...)
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *PostRepository) Create(_ context.Context, post domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ID] = post
	return nil
}

func (r *PostRepository) ToggleLike(_ context.Context, postID, userID string) (domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[postID]
	if !ok {
		return domain.Post{}, domain.ErrPostNotFound
	}
	likedBy := make([]string, 0, len(post.LikedBy)+1)
	liked := false
	for _, id := range post.LikedBy {
		if id == userID {
			liked = true
			continue
		}
		likedBy = append(likedBy, id)
	}
	if liked {
		post.Likes--
	} else {
		likedBy = append(likedBy, userID)
		post.Likes++
	}
	post.LikedBy = likedBy
	r.posts[postID] = post
	return post, nil
}
