package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a marketplace member. Reputation is guarded by ReputationVersion:
// every write must present the version it read.
type User struct {
	ID                uuid.UUID
	Email             string
	Nickname          string
	Reputation        decimal.Decimal
	ReputationVersion int64
	PointBalance      int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
