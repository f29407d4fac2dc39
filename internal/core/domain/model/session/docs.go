// Package session contains the order lifecycle aggregate and its value
// objects: the delivery address, the server-computed delivery plan, the
// tracked flight path, and live position events.
//
// The lifecycle is a linear state machine
// (Initial -> Placing -> InTransit -> Arrived -> Collected) with no backward
// edges; starting over means constructing a fresh OrderSession.
package session
