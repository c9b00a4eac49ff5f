package handler

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

var (
	commandHandlers   = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
	componentHandlers = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
)

// AddCommandHandler registers a handler for a slash command.
func AddCommandHandler(name string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	commandHandlers[name] = handler
}

// AddComponentHandler registers a handler for a message component.
// Component custom IDs are of the form "<verb>_<id>"; the verb is the key.
func AddComponentHandler(verb string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	componentHandlers[verb] = handler
}

// OnInteractionCreate is the main interaction router.
// It should be registered as the primary interaction handler at startup.
func OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if handler, ok := commandHandlers[i.ApplicationCommandData().Name]; ok {
			handler(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		verb, _, _ := strings.Cut(customID, "_")

		if handler, ok := componentHandlers[verb]; ok {
			handler(s, i)
		}
	}
}
