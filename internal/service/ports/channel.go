package ports

import "context"

// Button is a channel-agnostic inline button. Action round-trips back as an
// opaque callback string.
type Button struct {
	Label  string
	Action string
}

// Channel is the outbound messaging surface. One implementation per wire
// protocol; the core only depends on this interface.
type Channel interface {
	SendMessage(ctx context.Context, recipient, text string) error
	SendButtons(ctx context.Context, recipient, text string, buttons []Button) error
	SendList(ctx context.Context, recipient, text string, items []Button) error
	SendTyping(ctx context.Context, recipient string) error
	ForwardToGroup(ctx context.Context, groupID, text string) error
}
