/* bot.go
 * Contains logic used for creating and running the bot. Requires a discord bot
 * token and an APIPtr, both of which are passed in from main.go
 */

package bot

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/bwmarrin/discordgo"

	"courtside/api/api"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
	}, nil
}

func (b *Bot) Run() error {
	// create a session
	discord, err := discordgo.New("Bot " + b.BotToken)
	if err != nil {
		return err
	}

	// add an event handler
	discord.AddHandler(b.newMessage)

	// open session
	discord.Open()
	defer discord.Close() // close session, after function termination

	// keep bot running until there is an os interruption (ctrl + C)
	fmt.Println("Bot running....")
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
	return nil
}

func (b *Bot) newMessage(discord *discordgo.Session, message *discordgo.MessageCreate) {
	// To prevent bot from responding to its own message, if the message author id matches the bot's then just return
	if message.Author.ID == discord.State.User.ID {
		return
	}

	// respond to user message if it contains one of the following commands
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(discord, message)

	case startsWith(message.Content, "$matches"):
		b.matchesHandler(discord, message)

	case startsWith(message.Content, "$status"):
		b.statusHandler(discord, message)

	case startsWith(message.Content, "$propose"):
		b.proposeScoreHandler(discord, message)

	case startsWith(message.Content, "$sign"):
		b.signScoreHandler(discord, message)

	case startsWith(message.Content, "$dispute"):
		b.disputeScoreHandler(discord, message)

	case startsWith(message.Content, "$finalize"):
		b.finalizeScoreHandler(discord, message)

	case startsWith(message.Content, "$correct"):
		b.correctScoreHandler(discord, message)

	case startsWith(message.Content, "$submitrating"):
		b.requestRatingHandler(discord, message)

	case startsWith(message.Content, "$actions"):
		b.actionsHandler(discord, message)
	}
}

// startsWith checks if the message content begins with the given command word
func startsWith(content string, command string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), command)
}
