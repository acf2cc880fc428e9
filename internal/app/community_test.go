package app_test

import (
	"context"
	"testing"
	"time"

	"justice-play/internal/app"
	"justice-play/internal/domain"
	"justice-play/internal/infra/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityFeed(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	feed := app.NewCommunityFeed(memory.NewPostRepository(app.SamplePosts(time.Now())), e.profiles)
	e.signIn(t, "u1")

	_, err := feed.Create(ctx, "u1", "  ")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	_, err = feed.Create(ctx, "ghost", "hi")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	post, err := feed.Create(ctx, "u1", "  Every child can be heard  ")
	require.NoError(t, err)
	assert.Equal(t, "Player u1", post.Author)
	assert.Equal(t, "Every child can be heard", post.Message)

	posts, err := feed.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, posts, 4)
	assert.Equal(t, post.ID, posts[0].ID)
	assert.Equal(t, "1", posts[1].ID)

	liked, err := feed.ToggleLike(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Equal(t, 16, liked.Likes)
	assert.True(t, liked.LikedByUser("u1"))

	unliked, err := feed.ToggleLike(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Equal(t, 15, unliked.Likes)

	_, err = feed.ToggleLike(ctx, "u1", "nope")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
	_, err = feed.ToggleLike(ctx, "ghost", "1")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
