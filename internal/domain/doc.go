// Package domain holds the value types and interface contracts shared by
// the customer, courier and admin front-ends.
//
// Everything here is an immutable value object: repositories produce fresh
// copies and callers replace state wholesale rather than mutating in place.
package domain
