package synth

import (
	"slices"
	"strings"

	"github.com/jonathan/brandcraft/internal/catalog"
)

// ChatReply is a consultant answer with follow-up prompts.
type ChatReply struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

// Chat answers a consultant message. Intents are tried in catalog order (SWOT,
// positioning, campaigns) and the first match wins; anything else gets general advice.
// chatContext is accepted for future conversational state and is currently ignored.
func (e *Engine) Chat(message, chatContext string) ChatReply {
	reply := e.matchIntent(message)
	return ChatReply{
		Response:    reply.Response,
		Suggestions: slices.Clone(reply.Suggestions),
	}
}

// Intent returns the name of the intent Chat would answer with ("swot", "positioning",
// "campaign" or "general").
func (e *Engine) Intent(message string) string {
	return e.matchIntent(message).Name
}

func (e *Engine) matchIntent(message string) catalog.ChatReply {
	lower := strings.ToLower(message)
	for _, intent := range e.cat.Chat.Intents {
		if containsAny(lower, intent.Keywords) {
			return intent
		}
	}
	return e.cat.Chat.Fallback
}
