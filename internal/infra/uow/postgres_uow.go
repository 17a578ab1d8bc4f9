package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/readstore"
	"room-booking/internal/infra/repository"
	"room-booking/internal/infra/repository/converter"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
	}
}

// WithinRoom serializes on the room row: the first statement of the transaction takes
// FOR UPDATE on it, so ReadCommitted is enough and writers for other rooms never block.
// Retryable failures are returned to the caller, not retried here.
func (u *PostgresUoW) WithinRoom(ctx context.Context, roomID room.ID, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr("begin", errs.Mark(err, errTransactionBegin))
	}

	defer func() {
		// ctx may already be done; the rollback still has to reach the server to drop the room lock.
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "room_id", roomID, "error", rollbackErr.Error())
			}
		}
	}()

	row, err := u.q.LockRoom(ctx, pgxTx, int64(roomID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return errs.Mark(infra.WrapRepoErr(fmt.Sprintf("room %d not found", roomID), err, infra.KindNotFound), errs.ErrRoomNotFound)
		}
		return infra.WrapRepoErr("failed to lock room", err)
	}

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
		room: converter.RoomSnapshotFromLockRow(row),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("commit", errs.Mark(err, errTransactionCommit))
	}
	return nil
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW
	room shared.RoomSnapshot

	// Lazy-initialized repository
	reservationRepo shared.ReservationStore
}

func (t *pgTx) Room() shared.RoomSnapshot {
	return t.room
}

func (t *pgTx) Reservations() shared.ReservationStore {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	roomStore        *readstore.RoomReadStore
	reservationStore *readstore.ReservationReadStore
}

func (r *commandReads) RoomByID(ctx context.Context, id room.ID) (*shared.RoomSnapshot, error) {
	if r.roomStore == nil {
		r.roomStore = readstore.NewRoomReadStore(r.uow.q, r.dbtx)
	}
	return r.roomStore.RoomByID(ctx, id)
}

func (r *commandReads) ReservationByID(ctx context.Context, id reservation.ID) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore.ReservationByID(ctx, id)
}
