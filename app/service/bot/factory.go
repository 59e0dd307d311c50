package bot

// SelectorJokeFinder picks the search-by-text provider. Every other
// selector, the empty string included, falls back to the random provider.
const SelectorJokeFinder = "jokeFinder"

func Select(selector string, source JokeSource) Provider {
	if selector == SelectorJokeFinder {
		return NewJokeFinderBot(source)
	}

	return NewRandomBot(source)
}
