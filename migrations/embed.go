// Package migrations embeds the versioned schema files so the binary can
// apply them without a deploy-time copy step.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
