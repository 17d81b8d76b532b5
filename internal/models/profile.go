package models

import "github.com/google/uuid"

// Profile mirrors the hosted profiles table. The table is owned by the
// database (row-level security included); this service only reads the balance
// and performs the conditional decrement.
type Profile struct {
	ID               uuid.UUID `json:"id"`
	CreditsRemaining int       `json:"credits_remaining"`
	Tier             string    `json:"tier"`
}
