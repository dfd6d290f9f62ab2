// Package client contains the client-side building blocks that talk to the
// outside world.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract for the authentication API (see the
//     Client interface): a single Login call.
//  2. A concrete HTTP implementation (see HTTPClient) that POSTs the
//     credentials as JSON, tags each request with an X-Request-ID and maps
//     failures to the errors below.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring the
//     SQLite session database and applying the embedded goose migrations.
//
// # Error Handling
//
//   - ErrUnavailable: the request could not be sent or completed.
//   - *RejectionError: the server answered with a non-2xx status; its
//     Message carries the body's "error" field when there is one.
//   - ErrMalformedResponse: a 2xx answer lacking token, id, name or email.
//
// Match sentinels with errors.Is and RejectionError with errors.As.
//
// # Contexts
//
// Login imposes no deadline of its own; it honours the caller's context.
package client
