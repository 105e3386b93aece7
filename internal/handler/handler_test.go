package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/dispatch"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/handler/dto"
	hmocks "github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/handler/mocks"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/router"
)

type handlerMocks struct {
	reservations *hmocks.MockReservationSvc
	support      *hmocks.MockSupportSvc
	dispatcher   *hmocks.MockDispatcher
	answerer     *hmocks.MockCallbackAnswerer
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		reservations: hmocks.NewMockReservationSvc(t),
		support:      hmocks.NewMockSupportSvc(t),
		dispatcher:   hmocks.NewMockDispatcher(t),
		answerer:     hmocks.NewMockCallbackAnswerer(t),
	}

	h := NewHandler(m.reservations, m.support, m.dispatcher, m.answerer)

	return m, router.InitRouter("test", h)
}

func testBooking() *domain.Booking {
	partySize := 4
	return &domain.Booking{
		ID:          uuid.New().String(),
		BusinessID:  uuid.New().String(),
		CustomerID:  uuid.New().String(),
		ServiceID:   "svc1",
		BookingDate: "2030-05-20",
		BookingTime: "19:00",
		PartySize:   &partySize,
		Status:      domain.BookingStatusConfirmed,
		Reference:   "RST-20300520-A2B3",
		CreatedAt:   time.Now(),
	}
}

// --- Slots ---

func TestHandler_GetSlots_Success(t *testing.T) {
	m, r := setupRouter(t)

	businessID := uuid.New().String()
	slots := []domain.Slot{
		{Label: "9:00 AM", Time: "09:00"},
		{Label: "9:30 AM", Time: "09:30"},
	}
	m.reservations.EXPECT().
		AvailableSlots(mock.Anything, businessID, "svc1", "2030-05-20").
		Return(slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/"+businessID+"/slots?date=2030-05-20&service_id=svc1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "09:00", resp[0].Time)
	assert.Equal(t, "9:30 AM", resp[1].Label)
}

func TestHandler_GetSlots_MissingDate(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/"+uuid.New().String()+"/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSlots_InvalidBusinessID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/not-a-uuid/slots?date=2030-05-20", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSlots_BusinessNotFound(t *testing.T) {
	m, r := setupRouter(t)

	businessID := uuid.New().String()
	m.reservations.EXPECT().
		AvailableSlots(mock.Anything, businessID, "", "2030-05-20").
		Return(nil, domain.ErrBusinessNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/"+businessID+"/slots?date=2030-05-20", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := testBooking()
	m.reservations.EXPECT().
		CreateBooking(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
			return in.BusinessID == booking.BusinessID &&
				in.Date == "2030-05-20" && in.Time == "19:00"
		})).
		Return(booking, nil)

	partySize := 4
	body, _ := json.Marshal(dto.CreateBookingRequest{
		CustomerID: booking.CustomerID,
		Date:       "2030-05-20",
		Time:       "19:00",
		PartySize:  &partySize,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/businesses/"+booking.BusinessID+"/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.Reference, resp.Reference)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_CreateBooking_SlotTaken(t *testing.T) {
	m, r := setupRouter(t)

	businessID := uuid.New().String()
	m.reservations.EXPECT().
		CreateBooking(mock.Anything, mock.Anything).
		Return(nil, domain.ErrSlotTaken)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CustomerID: uuid.New().String(),
		Date:       "2030-05-20",
		Time:       "19:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/businesses/"+businessID+"/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_BadBody(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/businesses/"+uuid.New().String()+"/bookings",
		strings.NewReader(`{"date": "2030-05-20"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RescheduleBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := testBooking()
	booking.BookingDate = "2030-05-21"
	booking.BookingTime = "18:00"

	m.reservations.EXPECT().
		RescheduleBooking(mock.Anything, booking.ID, "2030-05-21", "18:00").
		Return(booking, nil)

	body, _ := json.Marshal(dto.RescheduleRequest{Date: "2030-05-21", Time: "18:00"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/reschedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2030-05-21", resp.Date)
	assert.Equal(t, "18:00", resp.Time)
}

func TestHandler_RescheduleBooking_Cancelled(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.reservations.EXPECT().
		RescheduleBooking(mock.Anything, bookingID, "2030-05-21", "18:00").
		Return(nil, domain.ErrBookingCancelled)

	body, _ := json.Marshal(dto.RescheduleRequest{Date: "2030-05-21", Time: "18:00"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/reschedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.reservations.EXPECT().CancelBooking(mock.Anything, bookingID).Return(true, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cancelled": true}`, w.Body.String())
}

func TestHandler_GetBookingByReference_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := testBooking()
	m.reservations.EXPECT().
		GetBookingByReference(mock.Anything, booking.Reference).
		Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?reference="+booking.Reference, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
}

func TestHandler_GetBookingByReference_MissingReference(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBookingByReference_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.reservations.EXPECT().
		GetBookingByReference(mock.Anything, "RST-20300520-ZZZZ").
		Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?reference=RST-20300520-ZZZZ", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBusinessBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := testBooking()
	m.reservations.EXPECT().
		ListByBusinessDate(mock.Anything, booking.BusinessID, "2030-05-20").
		Return([]*domain.Booking{booking}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/"+booking.BusinessID+"/bookings?date=2030-05-20", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, booking.ID, resp[0].ID)
}

func TestHandler_GetCustomerBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := testBooking()
	m.reservations.EXPECT().
		ListUpcoming(mock.Anything, booking.CustomerID, booking.BusinessID).
		Return([]*domain.Booking{booking}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/customers/"+booking.CustomerID+"/bookings?business_id="+booking.BusinessID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, booking.Reference, resp[0].Reference)
}

func TestHandler_GetCustomerBookings_MissingBusinessID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/"+uuid.New().String()+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Support ---

func TestHandler_ResolveSupport_Success(t *testing.T) {
	m, r := setupRouter(t)

	customerID := uuid.New().String()
	businessID := uuid.New().String()
	m.support.EXPECT().Resolve(mock.Anything, customerID, businessID).Return(true, nil)

	body, _ := json.Marshal(dto.ResolveSupportRequest{CustomerID: customerID, BusinessID: businessID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/support/resolve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"resolved": true}`, w.Body.String())
}

// --- Webhooks ---

func TestHandler_TelegramWebhook_Message(t *testing.T) {
	m, r := setupRouter(t)

	businessID := uuid.New().String()
	m.dispatcher.EXPECT().
		HandleMessage(mock.Anything, dispatch.InboundMessage{
			BusinessID: businessID,
			Identity: domain.ChannelIdentity{
				Kind:       domain.ChannelTelegram,
				ExternalID: "555",
				FullName:   "Ama Mensah",
			},
			Text: "book a table for friday",
		}).
		Return(nil)

	payload := `{
		"update_id": 1,
		"message": {
			"message_id": 10,
			"chat": {"id": 555},
			"from": {"id": 555, "first_name": "Ama", "last_name": "Mensah"},
			"text": "book a table for friday"
		}
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/telegram/"+businessID, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TelegramWebhook_Callback(t *testing.T) {
	m, r := setupRouter(t)

	businessID := uuid.New().String()
	m.answerer.EXPECT().AnswerCallback("cb42")
	m.dispatcher.EXPECT().
		HandleCallback(mock.Anything, dispatch.InboundCallback{
			BusinessID: businessID,
			Identity: domain.ChannelIdentity{
				Kind:       domain.ChannelTelegram,
				ExternalID: "555",
				FullName:   "Ama Mensah",
			},
			Data: "confirm_booking",
		}).
		Return(nil)

	payload := `{
		"update_id": 2,
		"callback_query": {
			"id": "cb42",
			"from": {"id": 555, "first_name": "Ama", "last_name": "Mensah"},
			"message": {"message_id": 11, "chat": {"id": 555}},
			"data": "confirm_booking"
		}
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/telegram/"+businessID, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TelegramWebhook_InvalidBusinessID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/telegram/nope", strings.NewReader(`{"update_id": 3}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_TelegramWebhook_IgnoresNonTextUpdate(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/telegram/"+uuid.New().String(),
		strings.NewReader(`{"update_id": 4, "edited_message": {"message_id": 12, "chat": {"id": 555}}}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
