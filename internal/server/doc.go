// Package server exposes the agent's local diagnostics endpoint.
//
// The endpoint is a development aid bound to localhost: it reports queue
// counters and lets an operator reschedule failed items without touching the
// database. It is not part of the device's UI surface.
package server
