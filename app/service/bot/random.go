package bot

import (
	"context"
	"fmt"

	"jokebot/app/service/conversation"
)

// RandomBot replies with an unconstrained random joke.
type RandomBot struct {
	source JokeSource
}

func NewRandomBot(source JokeSource) *RandomBot {
	return &RandomBot{source: source}
}

func (b *RandomBot) HandleMessage(ctx context.Context, text string, conv *conversation.Conversation) error {
	conv.AddUserMessage(text)

	if conv.Len() <= 1 {
		conv.AddBotMessage(welcomeMessage)
	}

	joke, err := b.source.RandomJoke(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve joke: %w", err)
	}

	conv.AddBotMessage(joke)

	return nil
}
