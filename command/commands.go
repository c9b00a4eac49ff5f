package command

import (
	"suggestbox/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.StatusCommand,
}
