package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return NewClient(baseURL, "test-key", "test-model", 5*time.Second, newTestLogger(t))
}

func TestParseReply_ActionWithData(t *testing.T) {
	c := newTestClient(t, "")

	content := "Sure! Let me check availability for you.\n" +
		"ACTION: SHOW_SLOTS\n" +
		`DATA: {"service_id": "svc1", "date": "2030-05-20", "party_size": 2}`

	result := c.parseReply(content)

	assert.Equal(t, "Sure! Let me check availability for you.", result.ReplyText)
	require.NotNil(t, result.Action)
	assert.Equal(t, domain.ActionShowSlots, result.Action.Kind)
	assert.Equal(t, "svc1", result.Action.ServiceID)
	assert.Equal(t, "2030-05-20", result.Action.Date)
	require.NotNil(t, result.Action.PartySize)
	assert.Equal(t, 2, *result.Action.PartySize)
}

func TestParseReply_QuotedPartySize(t *testing.T) {
	c := newTestClient(t, "")

	result := c.parseReply("ACTION: SHOW_SLOTS\nDATA: {\"party_size\": \"4\"}")

	require.NotNil(t, result.Action)
	require.NotNil(t, result.Action.PartySize)
	assert.Equal(t, 4, *result.Action.PartySize)
}

func TestParseReply_NoAction(t *testing.T) {
	c := newTestClient(t, "")

	result := c.parseReply("We're open 9 to 5 on weekdays.")

	assert.Equal(t, "We're open 9 to 5 on weekdays.", result.ReplyText)
	assert.Nil(t, result.Action)
}

func TestParseReply_UnknownActionDropped(t *testing.T) {
	c := newTestClient(t, "")

	result := c.parseReply("Hello!\nACTION: DO_MAGIC")

	assert.Equal(t, "Hello!", result.ReplyText)
	assert.Nil(t, result.Action)
}

func TestParseReply_ManageBooking(t *testing.T) {
	c := newTestClient(t, "")

	result := c.parseReply("Here it is.\nACTION: MANAGE_BOOKING\nDATA: {\"booking_id\": \"b1\"}")

	require.NotNil(t, result.Action)
	assert.Equal(t, domain.ActionManageBooking, result.Action.Kind)
	assert.Equal(t, "b1", result.Action.BookingID)
}

func TestParseReply_BadDataKeepsAction(t *testing.T) {
	c := newTestClient(t, "")

	result := c.parseReply("Ok.\nACTION: SHOW_SLOTS\nDATA: {not json}")

	require.NotNil(t, result.Action)
	assert.Equal(t, domain.ActionShowSlots, result.Action.Kind)
	assert.Empty(t, result.Action.Date)
}

func TestClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])
		msgs := req["messages"].([]any)
		first := msgs[0].(map[string]any)
		assert.Equal(t, "system", first["role"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Checking!\nACTION: SHOW_BOOKINGS"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	result, err := c.Generate(context.Background(), "you are a receptionist", []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "show my bookings"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Checking!", result.ReplyText)
	require.NotNil(t, result.Action)
	assert.Equal(t, domain.ActionShowBookings, result.Action.Kind)
}

func TestClient_Generate_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.Generate(context.Background(), "sys", nil)
	assert.Error(t, err)
}

func TestClient_Generate_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.Generate(context.Background(), "sys", nil)
	assert.Error(t, err)
}
