// Package entity contains the core business objects of the project.
package entity

import "time"

// Device is an edge endpoint allowed to push readings.
type Device struct {
	DeviceID   string     `json:"device_id"`              // Globally unique, immutable identifier.
	SecretHash string     `json:"-"`                      // bcrypt hash of the shared secret.
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"` // Set on every accepted write.
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
