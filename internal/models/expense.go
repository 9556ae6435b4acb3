package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense belongs to exactly one user; every store operation against it is
// scoped by UserID so cross-user access is structurally impossible.
type Expense struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"userId" gorm:"index;not null;size:36"`
	Title     string    `json:"title" gorm:"not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Category  string    `json:"category,omitempty"`
	Info      string    `json:"info,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate assigns an opaque id when none is set.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ExpenseFilter is the storage predicate built from a validated list query.
// Bounds are inclusive; nil or zero values leave the dimension unconstrained.
type ExpenseFilter struct {
	From      *time.Time
	To        *time.Time
	MinAmount *float64
	MaxAmount *float64
	Category  string
	Search    string
	Limit     int
}
