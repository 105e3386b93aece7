package channel

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports"
)

// WhatsAppChannel sends messages through the Twilio WhatsApp API. Recipients
// are E.164 phone numbers; buttons and lists are rendered as numbered text
// since plain WhatsApp messages carry no inline keyboards.
type WhatsAppChannel struct {
	client *twilio.RestClient
	from   string
	logger logger.Logger
}

func NewWhatsAppChannel(accountSID, authToken, from string, logger logger.Logger) *WhatsAppChannel {
	var client *twilio.RestClient
	if accountSID == "" || authToken == "" {
		logger.Warn("twilio credentials are empty, whatsapp channel disabled")
	} else {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}
	return &WhatsAppChannel{client: client, from: from, logger: logger}
}

func (c *WhatsAppChannel) SendMessage(ctx context.Context, recipient, text string) error {
	if c.client == nil {
		return fmt.Errorf("whatsapp channel disabled")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + recipient)
	params.SetFrom("whatsapp:" + c.from)
	params.SetBody(text)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}
	if resp.Sid != nil {
		c.logger.Debug("whatsapp message sent",
			logger.String("sid", *resp.Sid),
		)
	}
	return nil
}

func (c *WhatsAppChannel) SendButtons(ctx context.Context, recipient, text string, buttons []ports.Button) error {
	return c.SendMessage(ctx, recipient, renderNumbered(text, buttons))
}

func (c *WhatsAppChannel) SendList(ctx context.Context, recipient, text string, items []ports.Button) error {
	return c.SendMessage(ctx, recipient, renderNumbered(text, items))
}

// SendTyping is a no-op: the message API exposes no typing indicator.
func (c *WhatsAppChannel) SendTyping(_ context.Context, _ string) error {
	return nil
}

func (c *WhatsAppChannel) ForwardToGroup(ctx context.Context, groupID, text string) error {
	return c.SendMessage(ctx, groupID, text)
}

// renderNumbered appends options as a numbered list. A number reply comes
// back through the normal message flow as free text.
func renderNumbered(text string, options []ports.Button) string {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n")
	for i, opt := range options {
		fmt.Fprintf(&b, "\n%d. %s", i+1, opt.Label)
	}
	b.WriteString("\n\nReply with a number to choose.")
	return b.String()
}
