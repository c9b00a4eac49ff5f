package suggest

import (
	"fmt"

	"suggestbox/model"
	"suggestbox/moderation"

	"github.com/bwmarrin/discordgo"
)

const (
	colorPending   = 0xFFFF00
	colorPublished = 0x57F287
	colorRejected  = 0xED4245
	colorErased    = 0x95A5A6
)

// promptEmbed renders the moderation prompt for a pending suggestion.
func promptEmbed(sub *model.Submission) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "New suggestion pending review",
		Description: fmt.Sprintf("**From:** <@%s>\n\n%s", sub.SubmitterID, sub.Content),
		Color:       colorPending,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Suggestion ID: %d", sub.ID),
		},
	}
	if sub.HasImage() {
		embed.Image = &discordgo.MessageEmbedImage{URL: sub.ImageRef}
	}
	return embed
}

// promptComponents returns the action row for a pending suggestion:
// the three decision buttons plus the stateless contact link.
func promptComponents(sub *model.Submission) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Publish",
					Style:    discordgo.SuccessButton,
					CustomID: moderation.DecisionToken(moderation.ActionPublish, sub.ID),
					Emoji:    &discordgo.ComponentEmoji{Name: "☑️"},
				},
				discordgo.Button{
					Label:    "Reject",
					Style:    discordgo.DangerButton,
					CustomID: moderation.DecisionToken(moderation.ActionReject, sub.ID),
					Emoji:    &discordgo.ComponentEmoji{Name: "🔘"},
				},
				discordgo.Button{
					Label:    "Erase",
					Style:    discordgo.SecondaryButton,
					CustomID: moderation.DecisionToken(moderation.ActionErase, sub.ID),
					Emoji:    &discordgo.ComponentEmoji{Name: "🗑️"},
				},
				contactButton(sub),
			},
		},
	}
}

// outcomeComponents collapses the prompt's buttons to the contact link only.
// The link stays usable after the decision; it never touches the state machine.
func outcomeComponents(sub *model.Submission) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{contactButton(sub)},
		},
	}
}

func contactButton(sub *model.Submission) discordgo.Button {
	return discordgo.Button{
		Label: "Contact",
		Style: discordgo.LinkButton,
		URL:   fmt.Sprintf("https://discord.com/users/%s", sub.SubmitterID),
	}
}

// outcomeLine is the attribution appended to the prompt after a decision.
func outcomeLine(sub *model.Submission) string {
	var label string
	switch sub.Status {
	case model.StatusPublished:
		label = "☑️ **Published**"
	case model.StatusRejected:
		label = "🔘 **Rejected**"
	case model.StatusErased:
		label = "🗑️ **Erased**"
	default:
		label = string(sub.Status)
	}
	return fmt.Sprintf("%s by <@%s>", label, sub.ReviewerID)
}

func outcomeColor(status model.Status) int {
	switch status {
	case model.StatusPublished:
		return colorPublished
	case model.StatusRejected:
		return colorRejected
	case model.StatusErased:
		return colorErased
	}
	return colorPending
}
