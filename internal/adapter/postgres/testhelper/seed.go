package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user with the default reputation and an empty point balance.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:         uuid.New(),
		Email:      "user-" + suffix + "@example.com",
		Nickname:   "user-" + suffix,
		Reputation: domain.DefaultReputation,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, nickname, reputation, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Nickname, user.Reputation, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedGroupBuy creates a group buy hosted by hostID with the given status and deadline.
func SeedGroupBuy(t *testing.T, pool *pgxpool.Pool, hostID uuid.UUID, status domain.GroupBuyStatus, deadline time.Time) domain.GroupBuy {
	t.Helper()

	ts := now()
	gb := domain.GroupBuy{
		ID:          uuid.New(),
		HostID:      hostID,
		Title:       "group buy " + uniqueSuffix(),
		Status:      status,
		TargetCount: 5,
		Deadline:    deadline.UTC().Truncate(time.Microsecond),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO group_buys (id, host_id, title, status, target_count, deadline, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		gb.ID, gb.HostID, gb.Title, string(gb.Status), gb.TargetCount, gb.Deadline, gb.CreatedAt, gb.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroupBuy: %v", err)
	}

	return gb
}

// SeedParticipation creates an active participation.
func SeedParticipation(t *testing.T, pool *pgxpool.Pool, userID, groupBuyID uuid.UUID) domain.Participation {
	t.Helper()

	p := domain.Participation{
		ID:             uuid.New(),
		UserID:         userID,
		GroupBuyID:     groupBuyID,
		Quantity:       1,
		DeliveryMethod: domain.DeliveryPickup,
		CreatedAt:      now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO participations (id, user_id, group_buy_id, quantity, delivery_method, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.UserID, p.GroupBuyID, p.Quantity, string(p.DeliveryMethod), p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedParticipation: %v", err)
	}

	return p
}

// SeedReview creates a review of the group buy's host.
func SeedReview(t *testing.T, pool *pgxpool.Pool, gb domain.GroupBuy, reviewerID uuid.UUID, rating int) domain.Review {
	t.Helper()

	ts := now()
	r := domain.Review{
		ID:         uuid.New(),
		GroupBuyID: gb.ID,
		ReviewerID: reviewerID,
		HostID:     gb.HostID,
		Rating:     rating,
		Content:    "review " + uniqueSuffix(),
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reviews (id, group_buy_id, reviewer_id, host_id, rating, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.GroupBuyID, r.ReviewerID, r.HostID, r.Rating, r.Content, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReview: %v", err)
	}

	return r
}

// SeedPost creates a community post.
func SeedPost(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Post {
	t.Helper()

	p := domain.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     "post " + uniqueSuffix(),
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO posts (id, author_id, title, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.AuthorID, p.Title, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}

	return p
}

// SeedNotification creates a notification for recipientID with the given read
// flag and creation time.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, recipientID uuid.UUID, isRead bool, createdAt time.Time) domain.Notification {
	t.Helper()

	n := domain.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Type:        domain.NotificationJoin,
		Content:     "someone joined your group buy.",
		RelatedType: domain.EntityGroupBuy,
		RelatedID:   uuid.New(),
		IsRead:      isRead,
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notifications (id, recipient_id, type, content, related_type, related_id, is_read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.RecipientID, string(n.Type), n.Content, string(n.RelatedType), n.RelatedID, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification: %v", err)
	}

	return n
}
