// Package server runs the development directory server: it starts the HTTP
// listener and shuts it down gracefully when the run context ends.
package server
