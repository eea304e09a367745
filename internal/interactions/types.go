package interactions

import (
	"encoding/json"
	"strings"
)

// InteractionType is the kind of interaction Discord delivered.
type InteractionType int

const (
	InteractionTypePing               InteractionType = 1
	InteractionTypeApplicationCommand InteractionType = 2
)

// ResponseType is the kind of reply sent back as the HTTP response to an interaction.
type ResponseType int

const (
	ResponsePong                             ResponseType = 1
	ResponseChannelMessageWithSource         ResponseType = 4
	ResponseDeferredChannelMessageWithSource ResponseType = 5
)

// Interaction is the subset of the Discord interaction object the faucet reads.
// See https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-object
type Interaction struct {
	// ID is the Discord snowflake of the interaction.
	ID string `json:"id"`
	// ApplicationID is the application the interaction was sent to.
	ApplicationID string `json:"application_id"`
	// Type tells pings apart from slash commands.
	Type InteractionType `json:"type"`
	// Token is valid for 15 minutes and addresses follow-up messages.
	Token string `json:"token"`
	// Data is set for application commands.
	Data *CommandData `json:"data,omitempty"`
	// Member is set when the command was invoked in a guild.
	Member *Member `json:"member,omitempty"`
}

// CommandData is the invoked command and its arguments.
type CommandData struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Options []CommandOption `json:"options"`
}

// CommandOption is one argument of a slash command.
type CommandOption struct {
	Name  string          `json:"name"`
	Type  int             `json:"type"`
	Value json.RawMessage `json:"value"`
}

// StringValue returns the option value if it is a JSON string.
func (o CommandOption) StringValue() (string, bool) {
	var s string
	if err := json.Unmarshal(o.Value, &s); err != nil {
		return "", false
	}
	return s, true
}

// Member is the guild member that invoked the command.
type Member struct {
	User *User `json:"user"`
}

// User is a Discord user.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CommandName returns the lower cased command name, or "" for non-command interactions.
func (i *Interaction) CommandName() string {
	if i.Data == nil {
		return ""
	}
	return strings.ToLower(i.Data.Name)
}

// Option returns the positional option at idx.
func (i *Interaction) Option(idx int) (CommandOption, bool) {
	if i.Data == nil || idx < 0 || idx >= len(i.Data.Options) {
		return CommandOption{}, false
	}
	return i.Data.Options[idx], true
}

// RequesterID returns the id of the member that invoked the command.
func (i *Interaction) RequesterID() string {
	if i.Member == nil || i.Member.User == nil {
		return ""
	}
	return strings.TrimSpace(i.Member.User.ID)
}

// Response is the body written back to Discord for an interaction.
type Response struct {
	Type ResponseType `json:"type"`
	Data *MessageData `json:"data,omitempty"`
}

// MessageData is the message content of a response.
type MessageData struct {
	Content string `json:"content"`
}

// FollowUp replaces the content of a deferred response.
type FollowUp struct {
	Content string `json:"content"`
}
