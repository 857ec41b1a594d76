// Package tracking is the delivery-tracking coordinator.
//
// A Coordinator polls the backend for an order's latest tracking sample,
// derives a display phase that only ever moves forward, smooths marker
// movement between GPS fixes, and decides when tracking should stop. At
// most one polling loop runs per coordinator; starting a new session
// cancels the previous one.
package tracking
