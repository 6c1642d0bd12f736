// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the single entity in the system, representing a registered account.
// PasswordHash is the bcrypt digest of the account password; it never leaves
// the account service and is excluded from every API response.
type User struct {
	ID           int64     // Auto-incremented primary key assigned by the database.
	Username     string    // Display handle, 3-100 characters, globally unique.
	Email        string    // Login identifier, globally unique.
	PasswordHash string    // One-way bcrypt digest of the password.
	CreatedAt    time.Time // Timestamp of when the account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}
