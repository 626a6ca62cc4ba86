// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the golang-migrate files for the check_ins and journals tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS
