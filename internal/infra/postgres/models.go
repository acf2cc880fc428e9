package postgres

import (
	"time"

	"github.com/uptrace/bun"
)

type accountModel struct {
	bun.BaseModel `bun:"table:accounts"`

	ID           string    `bun:"id,pk"`
	Name         string    `bun:"name,notnull"`
	NameKey      string    `bun:"name_key,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
}

type postModel struct {
	bun.BaseModel `bun:"table:community_posts"`

	ID        string    `bun:"id,pk"`
	Author    string    `bun:"author,notnull"`
	Message   string    `bun:"message,notnull"`
	Likes     int       `bun:"likes,notnull"`
	Comments  int       `bun:"comments,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

type likeModel struct {
	bun.BaseModel `bun:"table:community_likes"`

	PostID string `bun:"post_id,pk"`
	UserID string `bun:"user_id,pk"`
}
