/* renderer.go
 * Contains channelRenderer, the discord implementation of the Renderer and Copier interfaces. Every message goes
 * through the channel's rate limiter since bulk input can produce a lot of messages at once
 * Authors: Zachary Bower
 */

package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"matchpost-bot/api/api"
	"matchpost-bot/api/shared"

	"golang.org/x/time/rate"
)

const (
	msgLimit = 1988 // keep space for newlines and markdown

	noMatchesMessage  = "No valid matches found. Please check the format."
	emptyInputMessage = "Please enter match details"
)

type channelRenderer struct {
	session   DiscordSession
	channelID string
	limiter   *rate.Limiter
}

func (b *Bot) newChannelRenderer(session DiscordSession, channelID string) *channelRenderer {
	return &channelRenderer{
		session:   session,
		channelID: channelID,
		limiter:   b.limiterFor(channelID),
	}
}

func (c *channelRenderer) send(content string) error {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return err
	}
	_, err := c.session.ChannelMessageSend(c.channelID, truncateContent(content))
	return err
}

// RenderSingle sends the title and description, then each tag as its own message so it can be copied on its own
func (c *channelRenderer) RenderSingle(post shared.MatchPost) error {
	if err := c.send(formatPost(post, false)); err != nil {
		return err
	}
	if failed := api.CopyTags(c, post); failed > 0 {
		return fmt.Errorf("failed to send %d of %d tags", failed, len(post.Tags))
	}
	return nil
}

// RenderBulk sends one message per match with its tags inline
func (c *channelRenderer) RenderBulk(posts []shared.MatchPost) error {
	if err := c.send(fmt.Sprintf("**Generated Content for All Matches** (%d)", len(posts))); err != nil {
		return err
	}
	for _, post := range posts {
		if err := c.send(formatPost(post, true)); err != nil {
			return fmt.Errorf("failed to send match %d: %w", post.Index+1, err)
		}
	}
	return nil
}

func (c *channelRenderer) ReportNoMatches() error {
	return c.send(noMatchesMessage)
}

func (c *channelRenderer) ReportEmptyBulkInput() error {
	return c.send(emptyInputMessage)
}

// CopyText sends the value on its own in a code block
func (c *channelRenderer) CopyText(value string) bool {
	if err := c.send(codeBlock(value)); err != nil {
		log.Printf("failed to send copy block to channel %s: %v\n", c.channelID, err)
		return false
	}
	return true
}

// formatPost builds the message for a post. Bulk posts get a match header and inline tags
func formatPost(post shared.MatchPost, bulk bool) string {
	var res strings.Builder
	if bulk {
		res.WriteString(fmt.Sprintf("__**%s**__\n", post.Header()))
	}
	res.WriteString("**📝 Title**\n")
	res.WriteString(codeBlock(post.Title))
	res.WriteString("\n**📄 Description**\n")
	res.WriteString(codeBlock(post.Description))
	if bulk && len(post.Tags) > 0 {
		res.WriteString("\n**🏷️ Tags**\n")
		for _, tag := range post.Tags {
			res.WriteString(fmt.Sprintf("`%s` ", tag))
		}
	}
	return strings.TrimRight(res.String(), " ")
}

func codeBlock(s string) string {
	return "```\n" + s + "\n```"
}

func truncateContent(s string) string {
	runes := []rune(s)
	if len(runes) > msgLimit {
		s = fmt.Sprintf("%v...", string(runes[:msgLimit]))
	}
	return s
}
