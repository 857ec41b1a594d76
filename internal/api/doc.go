// Package api is the authenticated request pipeline every repository calls
// through.
//
// A Client wraps a base URL and an http.Client, attaches a bearer token when
// a TokenSource yields one, logs request and response bodies, and maps every
// fault into one of the typed errors in this package. ClientSet lazily
// builds the process-wide public and authenticated clients exactly once.
package api
