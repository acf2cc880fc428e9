package migrations

import (
	_ "embed"
)

//go:embed 0003_create_community.sql
var createCommunitySQL string

func init() {
	Migrations.MustRegister(
		exec(createCommunitySQL),
		exec(`DROP TABLE IF EXISTS community_likes; DROP TABLE IF EXISTS community_posts`),
	)
}
