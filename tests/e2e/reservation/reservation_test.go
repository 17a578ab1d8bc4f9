//go:build e2e

package reservation_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"room-booking/internal/handler/dto/response"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/dbtest"
	"room-booking/tests/common/httptest"
	"room-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	reservationsURL     = "/api/reservations"
	reservationURL      = "/api/reservations/%d"
	roomURL             = "/api/rooms/%d"
	roomReservationsURL = "/api/rooms/%d/reservations"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// a day far enough ahead that the real clock never makes it past
func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(time.DateOnly)
}

func (s *ReservationSuite) create(t *testing.T, b *builder.ReservationBuilder) *response.ReservationResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, b.BuildCreateRequestDTO())
	var created response.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return &created
}

// =============================================================================
// TestAdmissionScenario - overlap, adjacency and re-admission against one room
// =============================================================================

func (s *ReservationSuite) TestAdmissionScenario() {
	s.Run("Alice, Bob and Carol compete for R1", func() {
		t := s.T()
		day := futureDate(30)
		r1 := dbtest.CreateTestRoom(t, s.DB, "R1", 8)
		base := func() *builder.ReservationBuilder { return builder.NewReservationBuilder().WithRoomID(r1) }

		alice := s.create(t, base().WithReserverName("Alice").WithSlot(day, "09:00", "10:00"))
		require.NotZero(t, alice.ID)
		require.Equal(t, "R1", alice.RoomName)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			base().WithReserverName("Bob").WithSlot(day, "09:30", "10:30").BuildCreateRequestDTO())
		detail := httptest.AssertErrorDetail(t, w, http.StatusConflict)
		require.EqualValues(t, alice.ID, detail["conflictingReservationId"])

		carol := s.create(t, base().WithReserverName("Carol").WithSlot(day, "10:00", "10:30"))

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(reservationURL, alice.ID),
			map[string]any{"startTime": "09:45", "endTime": "10:15"})
		detail = httptest.AssertErrorDetail(t, w, http.StatusConflict)
		require.EqualValues(t, carol.ID, detail["conflictingReservationId"])

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, alice.ID), nil)
		var after response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &after)
		if diff := cmp.Diff(alice, &after, cmpopts.EquateApproxTime(time.Millisecond)); diff != "" {
			t.Errorf("reservation changed after a rejected re-admission (-before +after):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomReservationsURL, r1)+"?date="+day, nil)
		var list response.ReservationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Equal(t, 2, list.Total)
		require.Equal(t, "Alice", list.Data[0].ReserverName)
		require.Equal(t, "Carol", list.Data[1].ReserverName)
	})

	s.Run("re-admission may overlap its own previous interval", func() {
		t := s.T()
		day := futureDate(31)
		roomID := dbtest.CreateTestRoom(t, s.DB, "R2", 4)
		created := s.create(t, builder.NewReservationBuilder().WithRoomID(roomID).WithSlot(day, "09:00", "10:00"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, created.ID),
			builder.NewReservationBuilder().WithReserverName("Alice").WithSlot(day, "09:30", "10:30").BuildReplaceRequestDTO())
		var updated response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "09:30", updated.StartTime)
		require.Equal(t, "10:30", updated.EndTime)
		require.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	})

	s.Run("withdrawn interval can be admitted again", func() {
		t := s.T()
		day := futureDate(32)
		roomID := dbtest.CreateTestRoom(t, s.DB, "R3", 4)
		b := builder.NewReservationBuilder().WithRoomID(roomID).WithSlot(day, "14:00", "15:00")
		first := s.create(t, b)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reservationURL, first.ID), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reservationURL, first.ID), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")

		second := s.create(t, b)
		require.NotEqual(t, first.ID, second.ID)
	})
}

// =============================================================================
// TestValidation - field rules and referential checks
// =============================================================================

func (s *ReservationSuite) TestValidation() {
	s.Run("rejections name the offending field", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "V1", 4)
		day := futureDate(10)
		testCases := []struct {
			name   string
			b      *builder.ReservationBuilder
			status int
			field  string
		}{
			{name: "end before start", b: builder.NewReservationBuilder().WithRoomID(roomID).WithSlot(day, "10:00", "09:00"), status: http.StatusBadRequest, field: "endTime"},
			{name: "zero length", b: builder.NewReservationBuilder().WithRoomID(roomID).WithSlot(day, "10:00", "10:00"), status: http.StatusBadRequest, field: "endTime"},
			{name: "yesterday", b: builder.NewReservationBuilder().WithRoomID(roomID).WithSlot(futureDate(-1), "10:00", "11:00"), status: http.StatusBadRequest, field: "date"},
			{name: "blank reserver", b: builder.NewReservationBuilder().WithRoomID(roomID).WithReserverName("  ").WithSlot(day, "10:00", "11:00"), status: http.StatusBadRequest, field: "reserverName"},
			{name: "unknown room", b: builder.NewReservationBuilder().WithRoomID(roomID + 1000).WithSlot(day, "10:00", "11:00"), status: http.StatusNotFound, field: "roomId"},
		}
		for _, tc := range testCases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, tc.b.BuildCreateRequestDTO())
			detail := httptest.AssertErrorDetail(t, w, tc.status)
			require.Contains(t, detail, tc.field, tc.name)
		}
		require.Zero(t, dbtest.CountReservations(t, s.DB, roomID))
	})
}

// =============================================================================
// TestConcurrentAdmission - one winner per slot, rooms independent
// =============================================================================

func (s *ReservationSuite) TestConcurrentAdmission() {
	s.Run("exactly one of N identical requests is admitted", func() {
		t := s.T()
		const n = 16
		day := futureDate(40)
		roomID := dbtest.CreateTestRoom(t, s.DB, "Hot Room", 10)
		body := builder.NewReservationBuilder().WithRoomID(roomID).WithSlot(day, "09:00", "10:00").BuildCreateRequestDTO()

		var mu sync.Mutex
		codes := map[int]int{}
		var g errgroup.Group
		for range n {
			g.Go(func() error {
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body)
				mu.Lock()
				codes[w.Code]++
				mu.Unlock()
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, 1, codes[http.StatusCreated], "codes: %v", codes)
		require.Equal(t, n-1, codes[http.StatusConflict], "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountReservations(t, s.DB, roomID))
	})

	s.Run("different rooms do not block each other", func() {
		t := s.T()
		day := futureDate(41)
		rooms := make([]int64, 4)
		for i := range rooms {
			rooms[i] = int64(dbtest.CreateTestRoom(t, s.DB, fmt.Sprintf("Parallel %d", i), 4))
		}

		var g errgroup.Group
		for _, id := range rooms {
			g.Go(func() error {
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, map[string]any{
					"roomId": id, "reserverName": "Dana", "date": day, "startTime": "09:00", "endTime": "10:00",
				})
				if w.Code != http.StatusCreated {
					return fmt.Errorf("room %d: status %d: %s", id, w.Code, w.Body.String())
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
	})
}

// =============================================================================
// TestRooms - listing and guarded deletion
// =============================================================================

func (s *ReservationSuite) TestRooms() {
	s.Run("a room with reservations cannot be deleted", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Keep Me", 6)
		dbtest.CreateTestReservation(t, s.DB, roomID, "Eve", futureDate(5), "09:00", "10:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(roomURL, roomID), nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomURL, roomID), nil)
		var room response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &room)
		require.Equal(t, "Keep Me", room.Name)
	})

	s.Run("an empty room is deleted", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Gone", 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(roomURL, roomID), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomURL, roomID), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// TestNotification - admitted events reach the outbox after commit
// =============================================================================

func (s *ReservationSuite) TestNotification() {
	s.Run("admission writes one outbox job", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Notify", 4)
		created := s.create(t, builder.NewReservationBuilder().WithRoomID(roomID).WithSlot(futureDate(7), "11:00", "12:00"))

		require.Eventually(t, func() bool {
			var n int
			err := s.DB.QueryRow(context.Background(),
				"SELECT count(*) FROM notification_jobs WHERE kind = 'reservation.admitted' AND (payload->>'reservationId')::bigint = $1",
				created.ID).Scan(&n)
			return err == nil && n == 1
		}, 5*time.Second, 50*time.Millisecond)
	})
}
