package suggest

import (
	"fmt"
	"strings"

	"suggestbox/model"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// StatusCommandHandler reports queue health to moderators: pending count,
// recorded outcome totals, and the dead-letter buffer contents.
func (h *Handler) StatusCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var recorded string
	counts, err := h.store.CountByStatus()
	if err != nil {
		h.log.Error("failed to count suggestions", zap.Error(err))
		recorded = "unavailable"
	} else {
		recorded = fmt.Sprintf("%d published / %d rejected",
			counts[model.StatusPublished], counts[model.StatusRejected])
	}

	letters := h.letters.Snapshot()
	deadLetter := "empty"
	if len(letters) > 0 {
		var lines []string
		for idx, entry := range letters {
			if idx == 5 {
				lines = append(lines, fmt.Sprintf("… and %d more", len(letters)-idx))
				break
			}
			lines = append(lines, fmt.Sprintf("`%s` #%d (%s): %s",
				entry.Ref, entry.Submission.ID, entry.Submission.Status, entry.Cause))
		}
		deadLetter = strings.Join(lines, "\n")
	}

	embed := &discordgo.MessageEmbed{
		Title: "Suggestion queue status",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Pending", Value: fmt.Sprintf("%d", h.pending.Len()), Inline: true},
			{Name: "Recorded", Value: recorded, Inline: true},
			{Name: fmt.Sprintf("Dead letter (%d)", len(letters)), Value: deadLetter},
		},
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.log.Warn("failed to respond to status command", zap.Error(err))
	}
}
