package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/handler/dto"
	hmocks "github.com/redball-academy/academy-booking/internal/handler/mocks"
)

type testMocks struct {
	sport   *hmocks.MockSportSvc
	config  *hmocks.MockConfigSvc
	slot    *hmocks.MockSlotSvc
	booking *hmocks.MockBookingSvc
	player  *hmocks.MockPlayerSvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		sport:   hmocks.NewMockSportSvc(t),
		config:  hmocks.NewMockConfigSvc(t),
		slot:    hmocks.NewMockSlotSvc(t),
		booking: hmocks.NewMockBookingSvc(t),
		player:  hmocks.NewMockPlayerSvc(t),
	}

	h := NewHandler(m.sport, m.config, m.slot, m.booking, m.player)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/sports", h.CreateSport)
		api.GET("/sports", h.ListSports)
		api.GET("/sports/:id", h.GetSport)
		api.GET("/sports/:id/available_slots", h.AvailableSlots)
		api.POST("/booking-config", h.CreateConfig)
		api.GET("/booking-config/:id/preview", h.PreviewConfig)
		api.POST("/blackout-dates", h.CreateBlackoutDate)
		api.GET("/slots", h.ListSlots)
		api.POST("/slots/bulk_create", h.BulkCreateSlots)
		api.DELETE("/slots/:id", h.DeleteSlot)
		api.POST("/bookings", h.CreateBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/players", h.CreatePlayer)
		api.POST("/players/scan", h.ScanPlayer)
		api.GET("/dashboard/stats", h.DashboardStats)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Sports ---

func TestHandler_CreateSport_Success(t *testing.T) {
	m, r := setupRouter(t)

	sport := &domain.Sport{
		ID:           uuid.New().String(),
		Name:         "Football",
		PricePerHour: decimal.NewFromInt(600),
		MaxPlayers:   10,
		IsActive:     true,
	}
	m.sport.EXPECT().Create(mock.Anything, mock.Anything).Return(sport, nil)

	w := doJSON(t, r, http.MethodPost, "/api/sports", dto.CreateSportRequest{
		Name:         "Football",
		PricePerHour: decimal.NewFromInt(600),
		MaxPlayers:   10,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp domain.Sport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Football", resp.Name)
}

func TestHandler_CreateSport_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sports", map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSport_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	m.sport.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrSportExists)

	w := doJSON(t, r, http.MethodPost, "/api/sports", dto.CreateSportRequest{
		Name:         "Football",
		PricePerHour: decimal.NewFromInt(600),
		MaxPlayers:   10,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetSport_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sports/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSport_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.sport.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrSportNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/sports/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListSports_EmptyIsArray(t *testing.T) {
	m, r := setupRouter(t)

	m.sport.EXPECT().List(mock.Anything, false).Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/sports", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[]}`, w.Body.String())
}

func TestHandler_AvailableSlots_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	date, _ := domain.ParseDate("2026-09-05")
	schedule := &domain.DaySchedule{Date: date, TotalSlots: 4, BookableSlots: 3}

	m.config.EXPECT().ScheduleForSport(mock.Anything, id, date).Return(schedule, nil)

	w := doJSON(t, r, http.MethodGet, "/api/sports/"+id+"/available_slots?date=2026-09-05", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.DaySchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.TotalSlots)
}

func TestHandler_AvailableSlots_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodGet, "/api/sports/"+id+"/available_slots?date=05-09-2026", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Booking configs ---

func TestHandler_CreateConfig_Success(t *testing.T) {
	m, r := setupRouter(t)

	sportID := uuid.New().String()
	cfg := &domain.BookingConfig{
		ID:                 uuid.New().String(),
		SportID:            sportID,
		OpensAt:            domain.NewClockTime(9, 0),
		ClosesAt:           domain.NewClockTime(18, 0),
		SlotDuration:       60,
		AdvanceBookingDays: 7,
		IsActive:           true,
	}
	m.config.EXPECT().Create(mock.Anything, mock.Anything).Return(cfg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/booking-config", map[string]any{
		"sport":                sportID,
		"opens_at":             "09:00",
		"closes_at":            "18:00",
		"slot_duration":        60,
		"advance_booking_days": 7,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateConfig_InvalidDuration(t *testing.T) {
	m, r := setupRouter(t)

	m.config.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidConfig)

	w := doJSON(t, r, http.MethodPost, "/api/booking-config", map[string]any{
		"sport":                uuid.New().String(),
		"opens_at":             "09:00",
		"closes_at":            "18:00",
		"slot_duration":        45,
		"advance_booking_days": 7,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PreviewConfig_RequiresDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/booking-config/"+uuid.New().String()+"/preview", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBlackoutDate_Global(t *testing.T) {
	m, r := setupRouter(t)

	created := &domain.BlackoutDate{ID: uuid.New().String(), Date: domain.Today(), Reason: "holiday"}
	m.config.EXPECT().CreateBlackoutDate(mock.Anything, mock.Anything).Return(created, nil)

	w := doJSON(t, r, http.MethodPost, "/api/blackout-dates", map[string]any{
		"date":   domain.Today().String(),
		"reason": "holiday",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

// --- Slots ---

func TestHandler_ListSlots_Filters(t *testing.T) {
	m, r := setupRouter(t)

	var got domain.SlotFilter
	m.slot.EXPECT().List(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, f domain.SlotFilter) ([]*domain.Slot, error) {
			got = f
			return []*domain.Slot{}, nil
		})

	w := doJSON(t, r, http.MethodGet, "/api/slots?sport=sp1&date=2026-09-05&available=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sp1", got.SportID)
	assert.True(t, got.AvailableOnly)
	require.NotNil(t, got.Date)
	assert.Equal(t, "2026-09-05", got.Date.String())
}

func TestHandler_ListSlots_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/slots?date=garbage", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BulkCreateSlots_Success(t *testing.T) {
	m, r := setupRouter(t)

	result := &domain.BulkGenerateResult{
		CreatedCount: 6,
		Slots:        []*domain.Slot{},
		SkippedDays:  []domain.Date{domain.Today()},
	}
	m.slot.EXPECT().BulkGenerate(mock.Anything, mock.Anything).Return(result, nil)

	w := doJSON(t, r, http.MethodPost, "/api/slots/bulk_create", map[string]any{
		"sport":      uuid.New().String(),
		"start_date": "2026-09-05",
		"end_date":   "2026-09-07",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BulkCreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.CreatedCount)
	assert.Len(t, resp.SkippedDays, 1)
}

func TestHandler_BulkCreateSlots_InvalidRange(t *testing.T) {
	m, r := setupRouter(t)

	m.slot.EXPECT().BulkGenerate(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidRange)

	w := doJSON(t, r, http.MethodPost, "/api/slots/bulk_create", map[string]any{
		"sport":      uuid.New().String(),
		"start_date": "2026-09-07",
		"end_date":   "2026-09-05",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteSlot_Booked(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.slot.EXPECT().Delete(mock.Anything, id).Return(domain.ErrValidation)

	w := doJSON(t, r, http.MethodDelete, "/api/slots/"+id, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	slotID := uuid.New().String()
	booking := &domain.Booking{
		ID:     uuid.New().String(),
		SlotID: slotID,
		UserID: "user-7",
		Status: domain.BookingStatusPending,
	}
	m.booking.EXPECT().Book(mock.Anything, slotID, "user-7").Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{Slot: slotID, UserID: "user-7"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.BookingStatusPending, resp.Status)
}

func TestHandler_CreateBooking_SlotTaken(t *testing.T) {
	m, r := setupRouter(t)

	slotID := uuid.New().String()
	m.booking.EXPECT().Book(mock.Anything, slotID, "user-7").Return(nil, domain.ErrSlotUnavailable)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{Slot: slotID, UserID: "user-7"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfirmBooking_EmptyBody(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	booking := &domain.Booking{ID: id, Status: domain.BookingStatusConfirmed}
	m.booking.EXPECT().Confirm(mock.Anything, id, (*decimal.Decimal)(nil)).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/confirm", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ConfirmBooking_Expired(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.booking.EXPECT().Confirm(mock.Anything, id, mock.Anything).Return(nil, domain.ErrBookingExpired)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/confirm", dto.ConfirmRequest{})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_WithReason(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	booking := &domain.Booking{ID: id, Status: domain.BookingStatusCancelled, CancellationReason: "rain"}
	m.booking.EXPECT().Cancel(mock.Anything, id, "rain").Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/cancel", dto.CancelRequest{Reason: "rain"})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Players ---

func TestHandler_CreatePlayer_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	player := &domain.Player{ID: uuid.New().String(), BookingID: bookingID, Name: "Arjun", Email: "arjun@example.com"}
	m.player.EXPECT().Create(mock.Anything, mock.Anything).Return(player, nil)

	w := doJSON(t, r, http.MethodPost, "/api/players", dto.CreatePlayerRequest{
		Booking: bookingID,
		Name:    "Arjun",
		Email:   "arjun@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PlayerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.PlayerNotCheckedIn), resp.Status)
}

func TestHandler_CreatePlayer_PaymentPending(t *testing.T) {
	m, r := setupRouter(t)

	m.player.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrPaymentPending)

	w := doJSON(t, r, http.MethodPost, "/api/players", dto.CreatePlayerRequest{
		Booking: uuid.New().String(),
		Name:    "Arjun",
		Email:   "arjun@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ScanPlayer_CheckIn(t *testing.T) {
	m, r := setupRouter(t)

	playerID := uuid.New().String()
	player := &domain.Player{ID: playerID, CheckInCount: 1}
	log := &domain.CheckInLog{ID: uuid.New().String(), PlayerID: playerID, Action: domain.CheckActionIn}
	m.player.EXPECT().Scan(mock.Anything, playerID, "gate 2").Return(player, log, nil)

	w := doJSON(t, r, http.MethodPost, "/api/players/scan", dto.ScanRequest{PlayerID: playerID, Location: "gate 2"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "IN", resp.Action)
	assert.Equal(t, "checked in", resp.Message)
}

func TestHandler_ScanPlayer_LimitReached(t *testing.T) {
	m, r := setupRouter(t)

	playerID := uuid.New().String()
	m.player.EXPECT().Scan(mock.Anything, playerID, "").Return(nil, nil, domain.ErrCheckInLimit)

	w := doJSON(t, r, http.MethodPost, "/api/players/scan", dto.ScanRequest{PlayerID: playerID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Dashboard ---

func TestHandler_DashboardStats(t *testing.T) {
	m, r := setupRouter(t)

	stats := &domain.DashboardStats{
		TotalBookings:  12,
		ActiveBookings: 4,
		TotalRevenue:   decimal.NewFromInt(7200),
		TotalPlayers:   30,
		AvailableSlots: 18,
	}
	m.booking.EXPECT().Stats(mock.Anything).Return(stats, nil)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.TotalBookings)
}

func TestHandler_DashboardStats_Error(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Stats(mock.Anything).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
