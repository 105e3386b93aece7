package ai

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

// flexInt tolerates both `2` and `"2"`; models are not reliable about
// quoting numbers.
type flexInt int

func (f *flexInt) UnmarshalJSON(raw []byte) error {
	s := strings.Trim(string(raw), `"`)
	if s == "" || s == "null" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

type actionData struct {
	ServiceID string   `json:"service_id"`
	Date      string   `json:"date"`
	PartySize *flexInt `json:"party_size"`
	BookingID string   `json:"booking_id"`
}

var actionKinds = map[string]domain.ActionKind{
	"SHOW_SLOTS":      domain.ActionShowSlots,
	"SHOW_BOOKINGS":   domain.ActionShowBookings,
	"MANAGE_BOOKING":  domain.ActionManageBooking,
	"HUMAN_HANDOFF":   domain.ActionHumanHandoff,
	"CONFIRM_BOOKING": domain.ActionConfirmBooking,
}

// parseReply splits the model output into customer-facing text and an
// optional action. ACTION/DATA lines are consumed wherever they appear.
func (c *Client) parseReply(content string) *domain.AIResult {
	var (
		kept    []string
		kind    string
		rawData string
	)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "ACTION:"):
			kind = strings.TrimSpace(strings.TrimPrefix(trimmed, "ACTION:"))
		case strings.HasPrefix(trimmed, "DATA:"):
			rawData = strings.TrimSpace(strings.TrimPrefix(trimmed, "DATA:"))
		default:
			kept = append(kept, line)
		}
	}

	result := &domain.AIResult{
		ReplyText: strings.TrimSpace(strings.Join(kept, "\n")),
	}
	if kind == "" {
		return result
	}

	actionKind, ok := actionKinds[kind]
	if !ok {
		c.logger.Warn("unknown action tag", logger.String("action", kind))
		return result
	}

	action := &domain.Action{Kind: actionKind}
	if rawData != "" {
		var data actionData
		if err := json.Unmarshal([]byte(rawData), &data); err != nil {
			c.logger.Warn("bad action data",
				logger.String("action", kind),
				logger.String("error", err.Error()),
			)
		} else {
			action.ServiceID = data.ServiceID
			action.Date = data.Date
			action.BookingID = data.BookingID
			if data.PartySize != nil {
				n := int(*data.PartySize)
				action.PartySize = &n
			}
		}
	}
	result.Action = action
	return result
}
