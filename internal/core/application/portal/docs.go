// Package portal is the application layer of the customer portal client:
// the session controller that mediates between user actions, the portal
// server, the live position stream, and the map rendering surface.
//
// State transitions are pure functions on the domain session; this package
// adds the side effects around them (requests, rendering, history writes)
// and the concurrency discipline: one mutex serializes user actions with
// the position-event goroutine.
package portal
