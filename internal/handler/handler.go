package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/dispatch"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/handler/dto"
)

type ReservationSvc interface {
	AvailableSlots(ctx context.Context, businessID, serviceID, date string) ([]domain.Slot, error)
	CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	RescheduleBooking(ctx context.Context, bookingID, newDate, newTime string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (bool, error)
	GetBookingByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListUpcoming(ctx context.Context, customerID, businessID string) ([]*domain.Booking, error)
	ListByBusinessDate(ctx context.Context, businessID, date string) ([]*domain.Booking, error)
}

type SupportSvc interface {
	Resolve(ctx context.Context, customerID, businessID string) (bool, error)
}

type Dispatcher interface {
	HandleMessage(ctx context.Context, msg dispatch.InboundMessage) error
	HandleCallback(ctx context.Context, cb dispatch.InboundCallback) error
}

// CallbackAnswerer acknowledges Telegram button presses.
type CallbackAnswerer interface {
	AnswerCallback(callbackID string)
}

type Handler struct {
	reservationService ReservationSvc
	supportService     SupportSvc
	dispatcher         Dispatcher
	answerer           CallbackAnswerer
}

func NewHandler(reservationService ReservationSvc, supportService SupportSvc, dispatcher Dispatcher, answerer CallbackAnswerer) *Handler {
	return &Handler{
		reservationService: reservationService,
		supportService:     supportService,
		dispatcher:         dispatcher,
		answerer:           answerer,
	}
}

// Slots

func (h *Handler) GetSlots(c *ginext.Context) {
	businessID := c.Param("id")
	if _, err := uuid.Parse(businessID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid business id"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	slots, err := h.reservationService.AvailableSlots(c.Request.Context(), businessID, c.Query("service_id"), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	businessID := c.Param("id")
	if _, err := uuid.Parse(businessID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid business id"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.reservationService.CreateBooking(c.Request.Context(), domain.CreateBookingInput{
		BusinessID:      businessID,
		CustomerID:      req.CustomerID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		Time:            req.Time,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBusinessBookings(c *ginext.Context) {
	businessID := c.Param("id")
	if _, err := uuid.Parse(businessID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid business id"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	bookings, err := h.reservationService.ListByBusinessDate(c.Request.Context(), businessID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) RescheduleBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.reservationService.RescheduleBooking(c.Request.Context(), bookingID, req.Date, req.Time)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	cancelled, err := h.reservationService.CancelBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"cancelled": cancelled})
}

func (h *Handler) GetBookingByReference(c *ginext.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "reference query parameter is required"})
		return
	}

	booking, err := h.reservationService.GetBookingByReference(c.Request.Context(), reference)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetCustomerBookings(c *ginext.Context) {
	customerID := c.Param("id")
	if _, err := uuid.Parse(customerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid customer id"})
		return
	}

	businessID := c.Query("business_id")
	if _, err := uuid.Parse(businessID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid business_id query parameter"})
		return
	}

	bookings, err := h.reservationService.ListUpcoming(c.Request.Context(), customerID, businessID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Support

func (h *Handler) ResolveSupport(c *ginext.Context) {
	var req dto.ResolveSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resolved, err := h.supportService.Resolve(c.Request.Context(), req.CustomerID, req.BusinessID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"resolved": resolved})
}

// Webhooks

func (h *Handler) TelegramWebhook(c *ginext.Context) {
	businessID := c.Param("business_id")
	if _, err := uuid.Parse(businessID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid business id"})
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid update payload"})
		return
	}

	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		if h.answerer != nil {
			h.answerer.AnswerCallback(cb.ID)
		}
		if cb.Message == nil {
			break
		}
		err := h.dispatcher.HandleCallback(c.Request.Context(), dispatch.InboundCallback{
			BusinessID: businessID,
			Identity:   telegramIdentity(cb.Message.Chat.ID, cb.From),
			Data:       cb.Data,
		})
		if err != nil {
			h.handleError(c, err)
			return
		}

	case update.Message != nil && update.Message.Text != "":
		msg := update.Message
		err := h.dispatcher.HandleMessage(c.Request.Context(), dispatch.InboundMessage{
			BusinessID: businessID,
			Identity:   telegramIdentity(msg.Chat.ID, msg.From),
			Text:       msg.Text,
		})
		if err != nil {
			h.handleError(c, err)
			return
		}
	}

	// Always 200 for recognized payloads or Telegram keeps retrying.
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func telegramIdentity(chatID int64, from *tgbotapi.User) domain.ChannelIdentity {
	identity := domain.ChannelIdentity{
		Kind:       domain.ChannelTelegram,
		ExternalID: strconv.FormatInt(chatID, 10),
	}
	if from != nil {
		identity.FullName = strings.TrimSpace(from.FirstName + " " + from.LastName)
	}
	return identity
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBusinessNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrReferenceTaken),
		errors.Is(err, domain.ErrBookingCancelled):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
