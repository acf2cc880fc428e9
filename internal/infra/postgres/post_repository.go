package postgres

import (
	"context"
	"database/sql"

	"justice-play/internal/domain"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// PostRepository stores the community feed in community_posts with one
// community_likes row per (post, user).
type PostRepository struct {
	db *bun.DB
}

func NewPostRepository(db *bun.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Seed inserts posts that are not stored yet.
func (r *PostRepository) Seed(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}
	models := make([]postModel, 0, len(posts))
	for _, p := range posts {
		models = append(models, toPostModel(p))
	}
	_, err := r.db.NewInsert().Model(&models).On("CONFLICT (id) DO NOTHING").Exec(ctx)
	return errors.Wrap(err, "seed posts")
}

func (r *PostRepository) List(ctx context.Context, limit int) ([]domain.Post, error) {
	var models []postModel
	q := r.db.NewSelect().Model(&models).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "list posts")
	}
	if len(models) == 0 {
		return []domain.Post{}, nil
	}

	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}
	var likes []likeModel
	if err := r.db.NewSelect().Model(&likes).Where("post_id IN (?)", bun.In(ids)).Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "list likes")
	}
	likedBy := make(map[string][]string, len(models))
	for _, l := range likes {
		likedBy[l.PostID] = append(likedBy[l.PostID], l.UserID)
	}

	posts := make([]domain.Post, 0, len(models))
	for _, m := range models {
		post := fromPostModel(m)
		post.LikedBy = likedBy[m.ID]
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, post domain.Post) error {
	model := toPostModel(post)
	_, err := r.db.NewInsert().Model(&model).Exec(ctx)
	return errors.Wrap(err, "insert post")
}

func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (domain.Post, error) {
	var post domain.Post
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var model postModel
		err := tx.NewSelect().Model(&model).Where("id = ?", postID).For("UPDATE").Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPostNotFound
		}
		if err != nil {
			return errors.Wrap(err, "load post")
		}

		like := likeModel{PostID: postID, UserID: userID}
		res, err := tx.NewDelete().Model(&like).WherePK().Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "remove like")
		}
		removed, _ := res.RowsAffected()
		if removed > 0 {
			model.Likes--
		} else {
			if _, err := tx.NewInsert().Model(&like).Exec(ctx); err != nil {
				return errors.Wrap(err, "add like")
			}
			model.Likes++
		}
		if _, err := tx.NewUpdate().Model(&model).Column("likes").WherePK().Exec(ctx); err != nil {
			return errors.Wrap(err, "update likes")
		}

		var likes []likeModel
		if err := tx.NewSelect().Model(&likes).Where("post_id = ?", postID).Scan(ctx); err != nil {
			return errors.Wrap(err, "list likes")
		}
		post = fromPostModel(model)
		for _, l := range likes {
			post.LikedBy = append(post.LikedBy, l.UserID)
		}
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func toPostModel(p domain.Post) postModel {
	return postModel{
		ID:        p.ID,
		Author:    p.Author,
		Message:   p.Message,
		Likes:     p.Likes,
		Comments:  p.Comments,
		CreatedAt: p.CreatedAt,
	}
}

func fromPostModel(m postModel) domain.Post {
	return domain.Post{
		ID:        m.ID,
		Author:    m.Author,
		Message:   m.Message,
		Likes:     m.Likes,
		Comments:  m.Comments,
		CreatedAt: m.CreatedAt,
	}
}
