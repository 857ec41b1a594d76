// Package repo implements the repositories the three apps call.
//
// Every operation follows the same protocol: call through the api pipeline,
// decode the snake_case wire DTO, and map it to a camelCase domain value.
// The wire rename is part of the external contract (the backend is fixed),
// so the DTO structs in this package are the single place field names are
// translated. All faults come back as the api package's typed errors.
package repo
