/* bot_command_test.go
 * Contains unit tests for NewBot
 * Authors: Zachary Bower
 */

package bot

import (
	"testing"

	"matchpost-bot/api/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region NewBot tests

func TestNewBot_Success(t *testing.T) {
	apiPtr := &api.API{Store: api.NewMockStore(), DefaultProfile: "nba"}

	bot, err := NewBot("test_token", apiPtr, 1.5)

	require.NoError(t, err)
	assert.Equal(t, "test_token", bot.BotToken)
	assert.Same(t, apiPtr, bot.APIPtr)
	assert.Equal(t, 1.5, bot.MessageRate)
	assert.NotNil(t, bot.limiters)
}

func TestNewBot_EmptyToken(t *testing.T) {
	_, err := NewBot("", &api.API{}, 1)
	assert.ErrorContains(t, err, "botToken is required")
}

func TestNewBot_NilAPI(t *testing.T) {
	_, err := NewBot("test_token", nil, 1)
	assert.ErrorContains(t, err, "apiPtr is required")
}

// endregion
