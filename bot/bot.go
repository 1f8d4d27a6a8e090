/* bot.go
 * Contains the Bot struct and helpers shared by the runtime and the handlers. Requires a discord bot token and an
 * APIPtr, both of which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"
	"sync"

	"matchpost-bot/api/api"

	"golang.org/x/time/rate"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API

	// Messages per second sent to a single channel, 0 means unlimited
	MessageRate float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewBot(botToken string, apiPtr *api.API, messageRate float64) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	return &Bot{
		BotToken:    botToken,
		APIPtr:      apiPtr,
		MessageRate: messageRate,
		limiters:    make(map[string]*rate.Limiter),
	}, nil
}

// limiterFor returns the rate limiter for a channel, creating it on first use
func (b *Bot) limiterFor(channelID string) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.limiters == nil {
		b.limiters = make(map[string]*rate.Limiter)
	}
	limiter, ok := b.limiters[channelID]
	if !ok {
		limit := rate.Inf
		if b.MessageRate > 0 {
			limit = rate.Limit(b.MessageRate)
		}
		// Allow a short burst so a single post and its tags go out together
		limiter = rate.NewLimiter(limit, 5)
		b.limiters[channelID] = limiter
	}
	return limiter
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
