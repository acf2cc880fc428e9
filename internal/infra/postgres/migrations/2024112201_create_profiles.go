package migrations

import (
	_ "embed"
)

//go:embed 0001_create_profiles.sql
var createProfilesSQL string

func init() {
	Migrations.MustRegister(
		exec(createProfilesSQL),
		exec(`DROP TABLE IF EXISTS profiles`),
	)
}
