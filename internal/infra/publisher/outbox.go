package publisher

import (
	"context"
	"encoding/json"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const kindReservationAdmitted = "reservation.admitted"

type JobWriter interface {
	CreateJob(ctx context.Context, id uuid.UUID, kind, topic string, payload []byte, runAt time.Time) error
}

// OutboxPublisher stores events in notification_jobs for an out-of-process relay. The
// event id is the job id, so a replayed event is stored once.
type OutboxPublisher struct {
	jobs  JobWriter
	topic string
}

func NewOutboxPublisher(jobs JobWriter, topic string) *OutboxPublisher {
	return &OutboxPublisher{jobs: jobs, topic: topic}
}

func (p *OutboxPublisher) Publish(ctx context.Context, ev reservation.AdmittedEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "encode admitted event")
	}

	err = p.jobs.CreateJob(ctx, ev.EventID, kindReservationAdmitted, p.topic, payload, ev.OccurredAt)
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return nil
	}
	return err
}
