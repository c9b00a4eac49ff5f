package def

import "github.com/bwmarrin/discordgo"

var StatusCommand = &discordgo.ApplicationCommand{
	Name:        "suggest-status",
	Description: "Show the moderation queue and dead-letter status",
}
