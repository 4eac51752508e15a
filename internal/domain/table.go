package domain

import "time"

// Table represents a restaurant table
type Table struct {
	ID           int64
	RestaurantID int64
	Label        string // unique within a restaurant
	Capacity     int
	Active       bool // inactive tables are excluded from scheduling

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fits returns true if the table is active and seats the party
func (t *Table) Fits(partySize int) bool {
	return t.Active && t.Capacity >= partySize
}
