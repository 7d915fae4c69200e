// Package http implements the development directory server: the six legacy
// endpoints the sync client talks to, backed by the in-memory directory
// service.
//
// Requests pass through recovery, tracing, access logging, response
// compression and the session-key check before they reach a handler.
package http
