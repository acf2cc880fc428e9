package migrations

import (
	_ "embed"
)

//go:embed 0002_create_accounts.sql
var createAccountsSQL string

func init() {
	Migrations.MustRegister(
		exec(createAccountsSQL),
		exec(`DROP TABLE IF EXISTS accounts`),
	)
}
