/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"matchpost-bot/api/shared"
	"matchpost-bot/api/store"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

const (
	postUsage   = "Usage: `$post [profile] \"Team A\" \"Team B\" \"Date\" \"Time\"`"
	clockMarker = "⏰"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Match Post Bot v1.0\n")
	res.WriteString("`$post [profile] \"Team A\" \"Team B\" \"Date\" \"Time\"`: Generates the title, description and tags for a single match. Names that contain two or more words need to be encased in \" (e.g. \"New York Knicks\"). The time is converted from IST to EST\n")
	res.WriteString("`$bulk [profile]`: Generates posts for every match in the lines that follow the command. Start the matches on the line after `$bulk`, e.g.\n")
	res.WriteString("```\n$bulk ncaa\ndate = Jan 5\n⏰7:00 PM | 👨 Men | Duke @ UNC\n⏰8:00 PM | 👩 Women | Stanford @ UConn\n```\n")
	res.WriteString("`$convert time`: Converts an IST time (e.g. 7:30 PM or 7 PM) to EST\n")
	res.WriteString(fmt.Sprintf("`$profiles`: Shows the template profiles that can be used. If no profile is given '%s' is used\n", b.APIPtr.DefaultProfile))
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// profilesHandler handles the $profiles command with a DiscordSession interface
func (b *Bot) profilesHandler(session DiscordSession, message *discordgo.MessageCreate) {
	profiles, err := b.APIPtr.GetProfiles()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured getting the template profiles")
		return
	}

	if len(profiles) == 0 {
		session.ChannelMessageSend(message.ChannelID, "No template profiles are configured")
		return
	}

	var res strings.Builder
	res.WriteString("Available template profiles:\n")
	for _, profile := range profiles {
		if profile == b.APIPtr.DefaultProfile {
			res.WriteString(fmt.Sprintf("- %s (default)\n", profile))
			continue
		}
		res.WriteString(fmt.Sprintf("- %s\n", profile))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// convertHandler handles the $convert command with a DiscordSession interface
func (b *Bot) convertHandler(session DiscordSession, message *discordgo.MessageCreate) {
	input := strings.TrimSpace(strings.TrimPrefix(message.Content, "$convert"))
	if input == "" {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$convert 7:30 PM`")
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s IST is %s", input, b.APIPtr.ConvertTime(input)))
}

// postHandler handles the $post command with a DiscordSession interface
func (b *Bot) postHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, postUsage)
		return
	}

	var profile string
	switch len(args) {
	case 4:
	case 5:
		profile, args = args[0], args[1:]
	default:
		session.ChannelMessageSend(message.ChannelID, postUsage)
		return
	}

	fields := shared.FieldMap{
		shared.FieldTeamA: args[0],
		shared.FieldTeamB: args[1],
		shared.FieldDate:  args[2],
		shared.FieldTime:  args[3],
	}

	renderer := b.newChannelRenderer(session, message.ChannelID)
	if err := b.APIPtr.GenerateSingle(profile, fields, renderer); err != nil {
		b.reportError(session, message.ChannelID, err)
	}
}

// bulkHandler handles the $bulk command with a DiscordSession interface. The profile is the rest of the first line and
// the bulk input is everything after it. A match written on the first line is moved into the bulk input
func (b *Bot) bulkHandler(session DiscordSession, message *discordgo.MessageCreate) {
	firstLine, bulkText, _ := strings.Cut(message.Content, "\n")
	profile := strings.TrimSpace(strings.TrimPrefix(firstLine, "$bulk"))
	if before, after, found := strings.Cut(profile, clockMarker); found {
		profile = strings.TrimSpace(before)
		bulkText = clockMarker + after + "\n" + bulkText
	}

	renderer := b.newChannelRenderer(session, message.ChannelID)
	if err := b.APIPtr.GenerateBulk(profile, bulkText, renderer); err != nil {
		b.reportError(session, message.ChannelID, err)
	}
}

// reportError tells the channel why a post couldn't be generated
func (b *Bot) reportError(session DiscordSession, channelID string, err error) {
	log.Println(err)
	if errors.Is(err, store.ErrProfileNotFound) {
		session.ChannelMessageSend(channelID, fmt.Sprintf("%s. Use $profiles to see the available profiles", err))
		return
	}
	session.ChannelMessageSend(channelID, "An error occured generating the post")
}

// splitArgs splits a command into its arguments, dropping the command itself. Quoted arguments are kept together and
// the quotes are removed
func splitArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(parts))
	for _, part := range parts[1:] {
		part = strings.Trim(strings.TrimSpace(part), "\"“”")
		if part != "" {
			args = append(args, part)
		}
	}
	return args, nil
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	// Route to appropriate handler
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$profiles"):
		b.profilesHandler(session, message)

	case startsWith(message.Content, "$convert"):
		b.convertHandler(session, message)

	case startsWith(message.Content, "$post"):
		b.postHandler(session, message)

	case startsWith(message.Content, "$bulk"):
		b.bulkHandler(session, message)
	}
}
