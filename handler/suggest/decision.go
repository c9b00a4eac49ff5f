package suggest

import (
	"errors"
	"fmt"

	"suggestbox/model"
	"suggestbox/moderation"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// DecisionHandler handles a moderator pressing one of the prompt's buttons.
func (h *Handler) DecisionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	action, id, err := moderation.ParseToken(i.MessageComponentData().CustomID)
	if err != nil {
		h.log.Warn("unparseable component token",
			zap.String("token", i.MessageComponentData().CustomID),
			zap.Error(err))
		return
	}

	moderatorID := interactionUserID(i)
	surface := &promptSurface{session: s, interaction: i}

	if err := h.proc.Decide(action, id, moderatorID, surface); err != nil {
		if errors.Is(err, moderation.ErrStaleAction) {
			// double click or already resolved; the surface was told
			h.log.Info("stale decision",
				zap.Int64("id", id),
				zap.String("moderator", moderatorID))
			return
		}
		h.log.Error("decision failed",
			zap.Int64("id", id),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// promptSurface is the moderation prompt a decision arrived on.
type promptSurface struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
}

var _ moderation.Prompter = (*promptSurface)(nil)

// Ack answers the interaction with an ephemeral confirmation.
func (ps *promptSurface) Ack(text string) error {
	return ps.session.InteractionRespond(ps.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// EditOutcome appends the outcome and moderator attribution to the prompt
// and collapses the buttons to the contact link.
func (ps *promptSurface) EditOutcome(sub *model.Submission) error {
	msg := ps.interaction.Message
	if msg == nil {
		return errors.New("interaction carries no prompt message")
	}

	embeds := msg.Embeds
	if len(embeds) > 0 {
		embeds[0].Description = fmt.Sprintf("%s\n\n%s", embeds[0].Description, outcomeLine(sub))
		embeds[0].Color = outcomeColor(sub.Status)
	}
	components := outcomeComponents(sub)

	_, err := ps.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    msg.ChannelID,
		ID:         msg.ID,
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}
