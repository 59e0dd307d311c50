package bot

import (
	"context"
	"fmt"

	"jokebot/app/service/conversation"
)

// JokeFinderBot replies with the first joke containing the user's message,
// or a fixed apology when the search comes up empty.
type JokeFinderBot struct {
	source JokeSource
}

func NewJokeFinderBot(source JokeSource) *JokeFinderBot {
	return &JokeFinderBot{source: source}
}

func (b *JokeFinderBot) HandleMessage(ctx context.Context, text string, conv *conversation.Conversation) error {
	conv.AddUserMessage(text)

	if conv.Len() <= 1 {
		conv.AddBotMessage(welcomeMessage)
	}

	matches, err := b.source.SearchJokes(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to search jokes: %w", err)
	}

	if len(matches) == 0 {
		conv.AddBotMessage(fmt.Sprintf("Phew!! The joke with the text '%s' was hard to find.", text))
		return nil
	}

	conv.AddBotMessage(matches[0])

	return nil
}
