package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a single transaction submitted for classification.
// It is a value: construct it once and pass it around by copy.
type Transaction struct {
	Timestamp time.Time
	ID        string
	Title     string // Free-text description as entered by the user
	Amount    float64
}

// NewTransaction builds a transaction with a freshly generated ID.
func NewTransaction(title string, amount float64, timestamp time.Time) Transaction {
	return Transaction{
		ID:        GenerateID(),
		Title:     title,
		Amount:    amount,
		Timestamp: timestamp,
	}
}

// GenerateID returns a new opaque transaction identifier.
func GenerateID() string {
	return uuid.NewString()
}
