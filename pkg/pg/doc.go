// Package pg owns PostgreSQL plumbing: a pgx connection pool created once
// at startup with retry, goose-driven schema migrations, a healthcheck
// closure, and error classifiers shared by the storage implementations.
//
// The pool is the single long-lived database handle for the process; the
// caller closes it on shutdown. There is no global registry of opened
// connections.
package pg
