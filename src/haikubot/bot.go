package haikubot

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/sj26/syllable/src/syllable"
)

type Config struct {
	Token           string
	ReactToHaiku    bool
	ReactToNonHaiku bool
	ExplainNonHaiku bool
	PositiveReacts  []string
	NegativeReacts  []string

	Debug bool
}

func (c Config) String() string {
	return fmt.Sprintf("\tReactToHaiku: %t\n\tReactToNonHaiku: %t\n\tExplainNonHaiku: %t\n",
		c.ReactToHaiku, c.ReactToNonHaiku, c.ExplainNonHaiku)
}

// Bot reacts to haiku posted in channels it can read and answers syllable
// queries.
type Bot struct {
	session *discordgo.Session
	counter *syllable.Counter
	config  Config

	channelCache map[string]*discordgo.Channel
	dmCache      map[string]*discordgo.Channel
}

func NewBot(config Config, counter *syllable.Counter) *Bot {
	log.Printf("Syllable Bot Config:\n%v", config)
	return &Bot{
		config:       config,
		counter:      counter,
		channelCache: make(map[string]*discordgo.Channel),
		dmCache:      make(map[string]*discordgo.Channel),
	}
}

func (b *Bot) Open() error {
	var err error
	b.session, err = discordgo.New("Bot " + b.config.Token)
	if err != nil {
		log.Println("error creating Discord session,", err)
		return err
	}

	if b.config.Debug {
		b.session.LogLevel = discordgo.LogDebug
	}

	b.session.AddHandler(b.ReceiveNewMessage)

	b.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages
	if b.config.ReactToHaiku || b.config.ReactToNonHaiku {
		b.session.Identify.Intents |= discordgo.IntentsGuildMessageReactions | discordgo.IntentsDirectMessageReactions
	}

	err = b.session.Open()
	if err != nil {
		log.Println("error opening connection,", err)
		return err
	}
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

const queryPrefix = "!syllables "

func (b *Bot) ReceiveNewMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot { // prevent SkyNet; don't talk to bots
		return
	}
	if strings.HasPrefix(m.Content, queryPrefix) {
		b.HandleQuery(s, m)
		return
	}
	if err := Validate(b.counter, m.Content); err == nil {
		log.Printf("received haiku: %s\n", strings.ReplaceAll(m.Content, "\n", "\\n"))
		b.HandleHaiku(s, m)
	} else {
		b.HandleNonHaiku(s, m, err)
	}
}

// HandleQuery answers "!syllables <text>" with per-word counts and a total.
func (b *Bot) HandleQuery(s *discordgo.Session, m *discordgo.MessageCreate) {
	words := syllable.Flatten(syllable.Words(strings.TrimPrefix(m.Content, queryPrefix)))
	if len(words) == 0 {
		return
	}
	parts := make([]string, 0, len(words))
	total := 0
	for _, word := range words {
		count := b.counter.CountWord(word)
		total += count
		parts = append(parts, fmt.Sprintf("%s: %d", word, count))
	}
	_, err := s.ChannelMessageSendReply(m.ChannelID, fmt.Sprintf("%s (total %d)", strings.Join(parts, ", "), total), m.Reference())
	if err != nil {
		log.Println("could not reply to syllable query,", err)
	}
}

func (b *Bot) HandleHaiku(s *discordgo.Session, m *discordgo.MessageCreate) {
	if b.config.ReactToHaiku {
		b.react(s, m, randomString(b.config.PositiveReacts))
	}
}

func (b *Bot) HandleNonHaiku(s *discordgo.Session, m *discordgo.MessageCreate, reason error) {
	if b.config.ReactToNonHaiku {
		b.react(s, m, randomString(b.config.NegativeReacts))
		log.Println("reacted to non-haiku,", m.ID, strings.ReplaceAll(m.Content, "\n", "\\n"))
	}

	if isDM, err := b.isDM(s, m.ChannelID); err == nil && isDM && b.config.ExplainNonHaiku {
		b.Explain(s, m, reason)
	} else if err != nil {
		log.Println("could not lookup channel,", err)
	}
}

// Explain DMs the author the reason along with the per-line counts the bot saw.
func (b *Bot) Explain(s *discordgo.Session, m *discordgo.MessageCreate, reason error) {
	dmChannel, err := b.createDMChannel(s, m.Author.ID)
	if err != nil {
		log.Println("could not create user DM channel,", err)
		return
	}
	var breakdown []string
	for i, line := range strings.Split(strings.Trim(m.Content, " \n\t"), "\n") {
		breakdown = append(breakdown, fmt.Sprintf("line %d: %d syllables", i+1, b.counter.Count(line)))
	}
	_, err = s.ChannelMessageSend(dmChannel.ID, fmt.Sprintf("%s\n%s", reason.Error(), strings.Join(breakdown, "\n")))
	if err != nil {
		log.Println("could not send message to user DM channel,", err)
	}
}

func (b *Bot) isDM(s *discordgo.Session, channelID string) (bool, error) {
	c, err := b.lookupChannel(s, channelID)
	if err != nil {
		return false, err
	}
	return c.Type == discordgo.ChannelTypeDM && len(c.Recipients) == 1, nil
}

func (b *Bot) react(s *discordgo.Session, m *discordgo.MessageCreate, reaction string) {
	err := s.MessageReactionAdd(m.ChannelID, m.Message.ID, reaction)
	if err != nil {
		log.Println("could not add emoji reaction,", err)
	}
}

func (b *Bot) createDMChannel(s *discordgo.Session, authorID string) (*discordgo.Channel, error) {
	if c, ok := b.dmCache[authorID]; ok {
		return c, nil
	}
	c, err := s.UserChannelCreate(authorID)
	if err != nil {
		return nil, err
	}
	b.channelCache[c.ID] = c
	b.dmCache[authorID] = c
	return c, nil
}

func (b *Bot) lookupChannel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	if c, ok := b.channelCache[channelID]; ok {
		return c, nil
	}
	c, err := s.Channel(channelID)
	if err != nil {
		return nil, err
	}
	b.channelCache[channelID] = c
	if c.Type == discordgo.ChannelTypeDM && len(c.Recipients) == 1 {
		b.dmCache[c.Recipients[0].ID] = c
	}
	return c, nil
}

func randomString(strs []string) string {
	return strs[rand.Intn(len(strs))]
}
