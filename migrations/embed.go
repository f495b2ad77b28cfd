// Package migrations embeds the goose SQL migrations so that cmd/migrate,
// the integration test helper and the server share one source of truth.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
