// Package metadata is the client's durable key-value store: a single SQLite
// table (key TEXT PRIMARY KEY, value BLOB) reached through dbx.DBTX, so the
// same repository works on a *sql.DB or inside a *sql.Tx.
//
// Contract
//
//   - Get on a missing key returns (nil, nil).
//   - Set is an upsert.
//   - Delete on a missing key is not an error.
//
// The session layer stores the signed-in user under "user" and the bare
// bearer token under "token"; this package knows nothing about either.
package metadata
