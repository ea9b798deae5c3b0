/* handlers.go
 * Contains testable handler methods that accept a DiscordSession interface.
 * Each handler resolves the acting user, calls the API facade and renders the
 * decision: denials surface their reason verbatim, infrastructure errors are
 * logged and reported generically.
 */

package bot

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"

	"courtside/api/permissions"
	"courtside/api/shared"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Courtside Bot\n")
	res.WriteString("`$matches`: lists this event's matches with their current status\n")
	res.WriteString("`$status matchId`: shows one match's status and result\n")
	res.WriteString("`$propose matchId 11-9 9-11 11-8`: reports your match score, your points first in each game. Your opponent must sign it\n")
	res.WriteString("`$sign matchId`: confirms the score your opponent proposed\n")
	res.WriteString("`$dispute matchId`: disputes the proposed score and hands the match to an organizer\n")
	res.WriteString("`$finalize matchId [scores]`: organizers only — makes the proposed score official, or enters one directly (side A points first)\n")
	res.WriteString("`$correct matchId scores`: organizers only — corrects an official result\n")
	res.WriteString("`$submitrating matchId`: organizers only — queues an official result for DUPR submission\n")
	res.WriteString("`$actions matchId`: shows which of these actions you can currently take\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// matchesHandler handles the $matches command with a DiscordSession interface
func (b *Bot) matchesHandler(session DiscordSession, message *discordgo.MessageCreate) {
	lines, err := b.APIPtr.ListMatches()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured getting the match list")
		return
	}
	if len(lines) == 0 {
		session.ChannelMessageSend(message.ChannelID, "No matches scheduled for this event")
		return
	}

	var res strings.Builder
	res.WriteString("Matches for this event:\n")
	for _, line := range lines {
		res.WriteString(fmt.Sprintf("- %s\n", line))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// statusHandler handles the $status command with a DiscordSession interface
func (b *Bot) statusHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := commandArgs(message.Content)
	if len(args) < 1 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $status matchId")
		return
	}

	report, err := b.APIPtr.MatchStatus(args[0])
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not get the status of match %s", args[0]))
		return
	}
	session.ChannelMessageSend(message.ChannelID, report)
}

// proposeScoreHandler handles the $propose command with a DiscordSession interface
func (b *Bot) proposeScoreHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	args := commandArgs(message.Content)
	if len(args) < 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $propose matchId 11-9 9-11 11-8")
		return
	}

	decision, err := b.APIPtr.ProposeScore(user, args[0], strings.Join(args[1:], " "))
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not propose a score: %s", err))
		return
	}
	if !decision.Allowed {
		session.ChannelMessageSend(message.ChannelID, decision.Reason)
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s proposed a score for match %s. The opposing side can $sign or $dispute it", user.Username, args[0]))
}

// signScoreHandler handles the $sign command with a DiscordSession interface
func (b *Bot) signScoreHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	args := commandArgs(message.Content)
	if len(args) < 1 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $sign matchId")
		return
	}

	decision, err := b.APIPtr.SignScore(user, args[0])
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occured signing the score")
		return
	}
	if !decision.Allowed {
		session.ChannelMessageSend(message.ChannelID, decision.Reason)
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Score for match %s signed. An organizer can now finalize it", args[0]))
}

// disputeScoreHandler handles the $dispute command with a DiscordSession interface
func (b *Bot) disputeScoreHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	args := commandArgs(message.Content)
	if len(args) < 1 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $dispute matchId")
		return
	}

	decision, err := b.APIPtr.DisputeScore(user, args[0])
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occured disputing the score")
		return
	}
	if !decision.Allowed {
		session.ChannelMessageSend(message.ChannelID, decision.Reason)
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Score for match %s disputed. An organizer will resolve it", args[0]))
}

// finalizeScoreHandler handles the $finalize command with a DiscordSession interface
func (b *Bot) finalizeScoreHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	args := commandArgs(message.Content)
	if len(args) < 1 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $finalize matchId [scores]")
		return
	}

	decision, err := b.APIPtr.FinalizeScore(user, args[0], strings.Join(args[1:], " "))
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not finalize the score: %s", err))
		return
	}
	if !decision.Allowed {
		session.ChannelMessageSend(message.ChannelID, decision.Reason)
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Match %s finalized. The result is now official", args[0]))
}

// correctScoreHandler handles the $correct command with a DiscordSession interface
func (b *Bot) correctScoreHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	args := commandArgs(message.Content)
	if len(args) < 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $correct matchId 11-9 9-11 11-8")
		return
	}

	decision, err := b.APIPtr.CorrectScore(user, args[0], strings.Join(args[1:], " "))
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not correct the score: %s", err))
		return
	}
	if !decision.Allowed {
		session.ChannelMessageSend(message.ChannelID, decision.Reason)
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Official result for match %s corrected", args[0]))
}

// requestRatingHandler handles the $submitrating command with a DiscordSession interface
func (b *Bot) requestRatingHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	args := commandArgs(message.Content)
	if len(args) < 1 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $submitrating matchId")
		return
	}

	decision, err := b.APIPtr.RequestRatingSubmission(user, args[0])
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occured requesting the rating submission")
		return
	}
	if !decision.Allowed {
		session.ChannelMessageSend(message.ChannelID, decision.Reason)
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Match %s queued for DUPR submission", args[0]))
}

// actionsHandler handles the $actions command with a DiscordSession interface
func (b *Bot) actionsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	args := commandArgs(message.Content)
	if len(args) < 1 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $actions matchId")
		return
	}

	actions, err := b.APIPtr.AvailableActions(user, args[0])
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not get the available actions for match %s", args[0]))
		return
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("Match %s is %s. Actions available to %s:\n", args[0], actions.StatusLabel, user.Username))
	res.WriteString(actionLine("propose", actions.Propose))
	res.WriteString(actionLine("sign", actions.Sign))
	res.WriteString(actionLine("dispute", actions.Dispute))
	res.WriteString(actionLine("finalize", actions.Finalize))
	res.WriteString(actionLine("correct", actions.Correct))
	res.WriteString(actionLine("direct finalize", actions.DirectFinalize))
	res.WriteString(actionLine("submit for rating", actions.RequestRatingSubmission))
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// actionLine renders one action's decision for the $actions report
func actionLine(name string, d permissions.Decision) string {
	if d.Allowed {
		return fmt.Sprintf("- %s: yes\n", name)
	}
	return fmt.Sprintf("- %s: no (%s)\n", name, d.Reason)
}

// commandArgs splits a command message into its arguments, honouring double
// quoted tokens, and drops the command word itself
func commandArgs(content string) []string {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	tokens, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil || len(tokens) <= 1 {
		return nil
	}
	var args []string
	for _, token := range tokens[1:] {
		token = strings.TrimSpace(token)
		if token != "" {
			args = append(args, token)
		}
	}
	return args
}
