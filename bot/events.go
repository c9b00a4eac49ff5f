package bot

import (
	"suggestbox/handler"
	"suggestbox/handler/suggest"

	"github.com/bwmarrin/discordgo"
)

func registerEventHandlers(s *discordgo.Session, h *suggest.Handler) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(h.MessageCreate)

	// 设置必要的intents
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsGuilds | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent
}
