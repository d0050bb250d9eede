// Package domain contains core concepts of the ride-share chat system.
// This file defines user identity as seen by the chat core.
// No runtime, network, or UI logic should be added here.
package domain

// Role is the capacity in which a user participates in a ride.
type Role string

const (
	RoleDriver    Role = "driver"
	RolePassenger Role = "passenger"
)

// Identity is the stable triple the chat core needs to classify messages.
// It is captured once at channel open time, never looked up ambiently.
type Identity struct {
	ID          string
	DisplayName string
	Role        Role
}
