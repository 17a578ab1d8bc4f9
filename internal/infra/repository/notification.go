package repository

import (
	"context"
	"time"

	"room-booking/internal/infra"
	sqlc "room-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const jobStatusQueued = "queued"

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

// CreateJob stores a queued outbox row. Re-inserting the same id is reported as a
// duplicate key, which lets callers treat a replayed event as already stored.
func (r *NotificationRepository) CreateJob(ctx context.Context, id uuid.UUID, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		ID:      id,
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		Status:  jobStatusQueued,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
	}

	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
