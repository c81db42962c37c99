// Package migrations embeds the schema migrations so the web binary and the
// migration CLI share one source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
