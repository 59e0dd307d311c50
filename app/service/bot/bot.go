package bot

import (
	"context"

	"jokebot/app/service/conversation"
)

const welcomeMessage = "Welcome! Let me tell you a joke."

// JokeSource is the outbound joke lookup the providers delegate to.
type JokeSource interface {
	RandomJoke(ctx context.Context) (string, error)
	SearchJokes(ctx context.Context, query string) ([]string, error)
}

// Provider turns a user message into bot replies, appending both to the
// conversation. A retrieval error leaves the user message recorded and no
// bot message appended.
type Provider interface {
	HandleMessage(ctx context.Context, text string, conv *conversation.Conversation) error
}
