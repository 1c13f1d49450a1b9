// Package migrations embeds the session-store schema migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
