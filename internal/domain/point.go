package domain

import (
	"time"

	"github.com/google/uuid"
)

// PointType distinguishes grants from spends.
type PointType string

const (
	PointEarn PointType = "EARN"
	PointUse  PointType = "USE"
)

func (t PointType) String() string { return string(t) }

// PointEntry is one append-only ledger row.
type PointEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    int64
	Type      PointType
	Reason    string
	CreatedAt time.Time
}
