package app

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	badgerepo "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres/badge"
	commentrepo "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres/comment"
	groupbuyrepo "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres/groupbuy"
	notificationrepo "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres/notification"
	participationrepo "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres/participation"
	pointrepo "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres/point"
	reputationrepo "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres/reputation"
	reviewrepo "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres/review"
	userrepo "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/groupbuy-backend/internal/config"
	"github.com/heartmarshall/groupbuy-backend/internal/eventbus"
	"github.com/heartmarshall/groupbuy-backend/internal/service/badge"
	"github.com/heartmarshall/groupbuy-backend/internal/service/comment"
	"github.com/heartmarshall/groupbuy-backend/internal/service/groupbuy"
	"github.com/heartmarshall/groupbuy-backend/internal/service/notification"
	"github.com/heartmarshall/groupbuy-backend/internal/service/point"
	"github.com/heartmarshall/groupbuy-backend/internal/service/reputation"
	"github.com/heartmarshall/groupbuy-backend/internal/service/review"
	"github.com/heartmarshall/groupbuy-backend/internal/service/scanner"
)

// Handler names, in dispatch order.
const (
	HandlerNotification = "notification"
	HandlerBadge        = "badge"
	HandlerPoint        = "point"
	HandlerReputation   = "reputation"
)

// Core is the event core wired to PostgreSQL: the bus with its four
// side-effect handlers, the scanner, and the write paths that publish.
type Core struct {
	Bus *eventbus.Bus

	Notifications *notification.Service
	Badges        *badge.Service
	Points        *point.Service
	Reputation    *reputation.Service
	Scanner       *scanner.Scanner

	GroupBuys *groupbuy.Service
	Reviews   *review.Service
	Comments  *comment.Service
}

// NewCore builds repositories, services and the bus on top of pool.
func NewCore(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Core, error) {
	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	groupBuys := groupbuyrepo.New(pool)
	participations := participationrepo.New(pool)
	reviews := reviewrepo.New(pool)
	comments := commentrepo.New(pool)
	notifications := notificationrepo.New(pool)
	badges := badgerepo.New(pool)
	points := pointrepo.New(pool)
	history := reputationrepo.New(pool)

	bus := eventbus.New(logger, tx, eventbus.Options{HandlerTimeout: cfg.Events.HandlerTimeout})

	c := &Core{
		Bus:           bus,
		Notifications: notification.NewService(logger, notifications, users, groupBuys),
		Badges:        badge.NewService(logger, badges, groupBuys, participations, reviews),
		Points:        point.NewService(logger, points, users),
		Reputation:    reputation.NewService(logger, users, history, cfg.Reputation.MaxRetries),
		GroupBuys:     groupbuy.NewService(logger, groupBuys, participations, tx, bus),
		Reviews:       review.NewService(logger, reviews, groupBuys, participations, tx, bus),
		Comments:      comment.NewService(logger, comments, groupBuys, tx, bus),
	}

	bus.Subscribe(HandlerNotification, c.Notifications.Handle, notification.Kinds()...)
	bus.Subscribe(HandlerBadge, c.Badges.Handle, badge.Kinds()...)
	bus.Subscribe(HandlerPoint, c.Points.Handle, point.Kinds()...)
	bus.Subscribe(HandlerReputation, c.Reputation.Handle, reputation.Kinds()...)

	sc, err := scanner.New(logger, groupBuys, notifications, bus, scanner.Options{
		Location:       cfg.Scheduler.Location,
		DeadlineSpec:   cfg.Scheduler.DeadlineSpec,
		RetentionSpec:  cfg.Scheduler.RetentionSpec,
		DeadlineWindow: cfg.Scheduler.DeadlineWindow,
		RetentionDays:  cfg.Scheduler.RetentionDays,
		JobTimeout:     cfg.Scheduler.JobTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create scanner: %w", err)
	}
	c.Scanner = sc

	return c, nil
}
