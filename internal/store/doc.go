// Package store is the app-scoped key-value persistence layer.
//
// Each app (customer, courier, admin) gets its own namespace directory
// holding the access token, cached identity and cart, serialised as JSON and
// sealed at rest with a chacha20poly1305 envelope keyed by a file generated
// on first use. All reads treat a missing, unreadable or corrupt entry as
// "absent"; storage problems never surface as errors to callers reading
// state. Writes go through a temp file and rename. All methods are
// concurrency-safe via internal locking.
package store
