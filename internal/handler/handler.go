package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"

	"github.com/redball-academy/academy-booking/internal/domain"
	"github.com/redball-academy/academy-booking/internal/handler/dto"
)

type SportSvc interface {
	Create(ctx context.Context, input domain.CreateSportInput) (*domain.Sport, error)
	GetByID(ctx context.Context, id string) (*domain.Sport, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Sport, error)
	Update(ctx context.Context, id string, input domain.UpdateSportInput) (*domain.Sport, error)
	Delete(ctx context.Context, id string) error
}

type ConfigSvc interface {
	Create(ctx context.Context, cfg *domain.BookingConfig) (*domain.BookingConfig, error)
	GetByID(ctx context.Context, id string) (*domain.BookingConfig, error)
	List(ctx context.Context, sportID string) ([]*domain.BookingConfig, error)
	Update(ctx context.Context, id string, input domain.UpdateConfigInput) (*domain.BookingConfig, error)
	Preview(ctx context.Context, configID string, date domain.Date) (*domain.DaySchedule, error)
	ScheduleForSport(ctx context.Context, sportID string, date domain.Date) (*domain.DaySchedule, error)

	ListBreakTimes(ctx context.Context, sportID string) ([]domain.BreakTime, error)
	CreateBreakTime(ctx context.Context, b *domain.BreakTime) (*domain.BreakTime, error)
	UpdateBreakTime(ctx context.Context, b *domain.BreakTime) error
	DeleteBreakTime(ctx context.Context, id, sportID string) error

	ListBlackoutDates(ctx context.Context, sportID string) ([]domain.BlackoutDate, error)
	CreateBlackoutDate(ctx context.Context, b *domain.BlackoutDate) (*domain.BlackoutDate, error)
	DeleteBlackoutDate(ctx context.Context, id string) error
}

type SlotSvc interface {
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	List(ctx context.Context, f domain.SlotFilter) ([]*domain.Slot, error)
	Create(ctx context.Context, sportID string, date domain.Date, start, end domain.ClockTime) (*domain.Slot, error)
	Update(ctx context.Context, slot *domain.Slot) error
	Delete(ctx context.Context, id string) error
	BulkGenerate(ctx context.Context, input domain.BulkGenerateInput) (*domain.BulkGenerateResult, error)
}

type BookingSvc interface {
	Book(ctx context.Context, slotID, userID string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, userID string) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id string, amountPaid *decimal.Decimal) (*domain.Booking, error)
	Cancel(ctx context.Context, id, reason string) (*domain.Booking, error)
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type PlayerSvc interface {
	Create(ctx context.Context, input domain.CreatePlayerInput) (*domain.Player, error)
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Player, error)
	Scan(ctx context.Context, playerID, location string) (*domain.Player, *domain.CheckInLog, error)
	ListLogs(ctx context.Context, playerID string) ([]*domain.CheckInLog, error)
}

type Handler struct {
	sportService   SportSvc
	configService  ConfigSvc
	slotService    SlotSvc
	bookingService BookingSvc
	playerService  PlayerSvc
}

func NewHandler(
	sportService SportSvc,
	configService ConfigSvc,
	slotService SlotSvc,
	bookingService BookingSvc,
	playerService PlayerSvc,
) *Handler {
	return &Handler{
		sportService:   sportService,
		configService:  configService,
		slotService:    slotService,
		bookingService: bookingService,
		playerService:  playerService,
	}
}

// Sports

func (h *Handler) CreateSport(c *ginext.Context) {
	var req dto.CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sport, err := h.sportService.Create(c.Request.Context(), domain.CreateSportInput{
		Name:         req.Name,
		PricePerHour: req.PricePerHour,
		Description:  req.Description,
		MaxPlayers:   req.MaxPlayers,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sport)
}

func (h *Handler) GetSport(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid sport id")
	if !ok {
		return
	}

	sport, err := h.sportService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sport)
}

func (h *Handler) ListSports(c *ginext.Context) {
	activeOnly := c.Query("active") == "true"

	sports, err := h.sportService.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Results(emptyWhenNil(sports)))
}

func (h *Handler) UpdateSport(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid sport id")
	if !ok {
		return
	}

	var req dto.UpdateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sport, err := h.sportService.Update(c.Request.Context(), id, domain.UpdateSportInput{
		Name:         req.Name,
		PricePerHour: req.PricePerHour,
		Description:  req.Description,
		MaxPlayers:   req.MaxPlayers,
		IsActive:     req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sport)
}

func (h *Handler) DeleteSport(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid sport id")
	if !ok {
		return
	}

	if err := h.sportService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// AvailableSlots computes the day schedule for one sport, defaulting to
// today when no date is given.
func (h *Handler) AvailableSlots(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid sport id")
	if !ok {
		return
	}

	date := domain.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	schedule, err := h.configService.ScheduleForSport(c.Request.Context(), id, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// Booking configs

func (h *Handler) CreateConfig(c *ginext.Context) {
	var req dto.CreateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cfg, err := h.configService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cfg)
}

func (h *Handler) GetConfig(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid config id")
	if !ok {
		return
	}

	cfg, err := h.configService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) ListConfigs(c *ginext.Context) {
	configs, err := h.configService.List(c.Request.Context(), c.Query("sport"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Results(emptyWhenNil(configs)))
}

func (h *Handler) UpdateConfig(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid config id")
	if !ok {
		return
	}

	var req dto.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cfg, err := h.configService.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) PreviewConfig(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid config id")
	if !ok {
		return
	}

	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	schedule, err := h.configService.Preview(c.Request.Context(), id, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// Break times

func (h *Handler) ListBreakTimes(c *ginext.Context) {
	breaks, err := h.configService.ListBreakTimes(c.Request.Context(), c.Query("sport"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Results(emptyWhenNil(breaks)))
}

func (h *Handler) CreateBreakTime(c *ginext.Context) {
	var req dto.CreateBreakTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	b := &domain.BreakTime{
		SportID:           req.Sport,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Reason:            req.Reason,
		AppliesToWeekdays: true,
		AppliesToWeekends: true,
		IsActive:          true,
	}
	if req.AppliesToWeekdays != nil {
		b.AppliesToWeekdays = *req.AppliesToWeekdays
	}
	if req.AppliesToWeekends != nil {
		b.AppliesToWeekends = *req.AppliesToWeekends
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	created, err := h.configService.CreateBreakTime(c.Request.Context(), b)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateBreakTime(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid break time id")
	if !ok {
		return
	}

	var req dto.UpdateBreakTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	breaks, err := h.configService.ListBreakTimes(c.Request.Context(), "")
	if err != nil {
		h.handleError(c, err)
		return
	}
	var b *domain.BreakTime
	for i := range breaks {
		if breaks[i].ID == id {
			b = &breaks[i]
			break
		}
	}
	if b == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "break time not found"})
		return
	}

	if req.StartTime != nil {
		b.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		b.EndTime = *req.EndTime
	}
	if req.Reason != nil {
		b.Reason = *req.Reason
	}
	if req.AppliesToWeekdays != nil {
		b.AppliesToWeekdays = *req.AppliesToWeekdays
	}
	if req.AppliesToWeekends != nil {
		b.AppliesToWeekends = *req.AppliesToWeekends
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err = h.configService.UpdateBreakTime(c.Request.Context(), b); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *Handler) DeleteBreakTime(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid break time id")
	if !ok {
		return
	}

	if err := h.configService.DeleteBreakTime(c.Request.Context(), id, c.Query("sport")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// Blackout dates

func (h *Handler) ListBlackoutDates(c *ginext.Context) {
	blackouts, err := h.configService.ListBlackoutDates(c.Request.Context(), c.Query("sport"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Results(emptyWhenNil(blackouts)))
}

func (h *Handler) CreateBlackoutDate(c *ginext.Context) {
	var req dto.CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.configService.CreateBlackoutDate(c.Request.Context(), &domain.BlackoutDate{
		SportID: req.Sport,
		Date:    req.Date,
		Reason:  req.Reason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) DeleteBlackoutDate(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid blackout date id")
	if !ok {
		return
	}

	if err := h.configService.DeleteBlackoutDate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// Slots

func (h *Handler) ListSlots(c *ginext.Context) {
	filter := domain.SlotFilter{
		SportID:       c.Query("sport"),
		AvailableOnly: c.Query("available") == "true",
	}

	for _, q := range []struct {
		name string
		dst  **domain.Date
	}{
		{"date", &filter.Date},
		{"start_date", &filter.StartDate},
		{"end_date", &filter.EndDate},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + q.name + ", expected YYYY-MM-DD"})
			return
		}
		*q.dst = &parsed
	}

	slots, err := h.slotService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Results(emptyWhenNil(slots)))
}

func (h *Handler) GetSlot(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid slot id")
	if !ok {
		return
	}

	slot, err := h.slotService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

func (h *Handler) CreateSlot(c *ginext.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.slotService.Create(c.Request.Context(), req.Sport, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *Handler) UpdateSlot(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid slot id")
	if !ok {
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.slotService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if req.Date != nil {
		slot.Date = *req.Date
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.Price != nil {
		slot.Price = *req.Price
	}

	if err = h.slotService.Update(c.Request.Context(), slot); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

func (h *Handler) DeleteSlot(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid slot id")
	if !ok {
		return
	}

	if err := h.slotService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *Handler) BulkCreateSlots(c *ginext.Context) {
	var req dto.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.slotService.BulkGenerate(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BulkCreateResponse{
		Message:      "slots generated",
		CreatedCount: result.CreatedCount,
		Slots:        result.Slots,
		SkippedDays:  result.SkippedDays,
		FailedDays:   result.FailedDays,
	})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), req.Slot, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid booking id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context(), c.Query("user"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Results(emptyWhenNil(bookings)))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid booking id")
	if !ok {
		return
	}

	// body is optional: no amount means "charge the slot price"
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Confirm(c.Request.Context(), id, req.AmountPaid)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid booking id")
	if !ok {
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *Handler) ListBookingPlayers(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid booking id")
	if !ok {
		return
	}

	players, err := h.playerService.ListByBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PlayerResponse, 0, len(players))
	for _, p := range players {
		resp = append(resp, dto.ToPlayerResponse(p))
	}
	c.JSON(http.StatusOK, dto.Results(resp))
}

// Players

func (h *Handler) CreatePlayer(c *ginext.Context) {
	var req dto.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	player, err := h.playerService.Create(c.Request.Context(), domain.CreatePlayerInput{
		BookingID: req.Booking,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlayerResponse(player))
}

func (h *Handler) GetPlayer(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid player id")
	if !ok {
		return
	}

	player, err := h.playerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPlayerResponse(player))
}

func (h *Handler) ScanPlayer(c *ginext.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	player, log, err := h.playerService.Scan(c.Request.Context(), req.PlayerID, req.Location)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScanResponse(player, log))
}

func (h *Handler) ListPlayerLogs(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid player id")
	if !ok {
		return
	}

	logs, err := h.playerService.ListLogs(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Results(emptyWhenNil(logs)))
}

// Dashboard

func (h *Handler) DashboardStats(c *ginext.Context) {
	stats, err := h.bookingService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) pathID(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

// emptyWhenNil keeps list responses as [] instead of null.
func emptyWhenNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSportNotFound),
		errors.Is(err, domain.ErrConfigNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPlayerNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSportExists),
		errors.Is(err, domain.ErrConfigExists),
		errors.Is(err, domain.ErrDuplicateSlot),
		errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrBookingExpired),
		errors.Is(err, domain.ErrBookingCancelled),
		errors.Is(err, domain.ErrPaymentPending),
		errors.Is(err, domain.ErrCheckInLimit),
		errors.Is(err, domain.ErrWrongDay):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidConfig),
		errors.Is(err, domain.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
