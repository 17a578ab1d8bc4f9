// Package publisher holds the outbound channels an admitted event can be handed to.
package publisher

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/reservation"
)

// LogPublisher writes each event as a structured log record.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, ev reservation.AdmittedEvent) error {
	p.logger.InfoContext(ctx, "reservation admitted",
		"event_id", ev.EventID.String(),
		"reservation_id", ev.ReservationID,
		"room_id", ev.RoomID,
		"room_name", ev.RoomName,
		"reserver_name", ev.ReserverName,
		"date", ev.Date,
		"start_time", ev.StartTime,
		"end_time", ev.EndTime,
	)
	return nil
}
