package business

import "time"

type Business struct {
	ID        string
	Name      string
	Category  string
	Currency  string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
