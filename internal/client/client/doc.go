// Package client contains device-side building blocks for the MANTIS field app.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk to
//     the sync gateway: Login, Ping, CreateInfringement, and the evidence
//     photo upload helpers.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens, and maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database, applying embedded goose migrations,
//     and resetting records a crash left mid-sync.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrLocalDataNotAvailable. Every
// other remote failure is a *RemoteError carrying the gateway's message; the
// sync executor stores that message verbatim on the failed record.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
package client
