// Package app wires application dependencies for the CLIs.
//
// It builds the concrete store, pipeline clients, repositories, relay and
// push bridge from Config, exposing them via the Wire struct for commands
// to use. Everything is constructed explicitly here, once per process; no
// package-level singletons.
package app
