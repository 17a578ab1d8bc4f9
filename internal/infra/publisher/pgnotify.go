package publisher

import (
	"context"
	"encoding/json"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/errs"
)

// NOTIFY payloads are capped by the server at just under 8000 bytes.
const maxNotifyPayload = 7999

type NotifyQueries interface {
	PgNotify(ctx context.Context, db sqlc.DBTX, arg sqlc.PgNotifyParams) error
}

// PgNotifyPublisher sends each event as JSON on a Postgres NOTIFY channel.
type PgNotifyPublisher struct {
	queries NotifyQueries
	db      sqlc.DBTX
	channel string
}

func NewPgNotifyPublisher(queries NotifyQueries, db sqlc.DBTX, channel string) *PgNotifyPublisher {
	return &PgNotifyPublisher{queries: queries, db: db, channel: channel}
}

func (p *PgNotifyPublisher) Publish(ctx context.Context, ev reservation.AdmittedEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "encode admitted event")
	}
	if len(payload) > maxNotifyPayload {
		return errs.Newf("admitted event %s is %d bytes, over the NOTIFY limit", ev.EventID, len(payload))
	}

	if err := p.queries.PgNotify(ctx, p.db, sqlc.PgNotifyParams{Channel: p.channel, Payload: string(payload)}); err != nil {
		return infra.WrapRepoErr("failed to notify", err)
	}
	return nil
}
