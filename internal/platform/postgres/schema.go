package postgres

import "embed"

// Schema holds the goose migrations describing the provider's tables. The
// provider owns the production schema; tests apply these to a scratch database.
//
//go:embed migrations/*.sql
var Schema embed.FS
