package pgconv

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerSecond = int64(time.Second / time.Microsecond)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// DateToPgtype keeps only the calendar part of t.
func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) time.Time {
	return pd.Time
}

func SecondsToPgtypeTime(seconds int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(seconds) * microsPerSecond, Valid: true}
}

func SecondsFromPgtypeTime(pt pgtype.Time) int {
	return int(pt.Microseconds / microsPerSecond)
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
