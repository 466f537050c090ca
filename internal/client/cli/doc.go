// Package cli provides the interactive MANTIS field command-line client.
//
// It wires configuration, the local offline queue, the gateway client, and an
// interactive REPL that keeps working without network coverage. Typical flow:
// log in (or PIN-unlock offline), record infringements, and let the
// connectivity watcher drain the queue when the gateway is reachable again.
//
// Key commands:
//   - login / unlock / setpin / logout
//   - record — capture an infringement with photos and a GPS fix
//   - status / list — queue counts and per-record sync state
//   - sync / retry — manual sync pass or single-record retry
//   - clearsynced / clearqueue — queue housekeeping
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
