// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Customer is a registered account that can authenticate and own bookings.
type Customer struct {
	ID           int64     // Surrogate identity assigned by storage.
	Name         string    // Display name given at registration.
	Email        string    // Login identifier, unique across customers.
	PasswordHash string    // Output of the configured password hasher; never the plain password.
	CreatedAt    time.Time // Timestamp of registration.
	Bookings     []*Booking
}
