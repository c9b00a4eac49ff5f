package suggest

import (
	"errors"
	"strings"

	"suggestbox/moderation"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const usageReply = "Welcome! Send a text suggestion, or an image with a caption, and it will be queued for moderation."

// MessageCreate turns an inbound message into a submission. Direct messages
// are always accepted; guild messages only from the configured intake channel.
func (h *Handler) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID != "" && m.ChannelID != h.cfg.Suggest.IntakeChannelID {
		return
	}

	imageRef := firstImageAttachment(m.Message)

	if _, err := h.proc.Submit(m.Author.ID, m.Author.Username, m.Content, imageRef); err != nil {
		if errors.Is(err, moderation.ErrEmptySubmission) {
			h.reply(s, m, usageReply)
			return
		}
		if errors.Is(err, moderation.ErrMissingCaption) {
			h.reply(s, m, "Please resend the photo together with a caption.")
			return
		}
		h.log.Error("intake failed", zap.String("submitter", m.Author.ID), zap.Error(err))
		h.reply(s, m, "Something went wrong, please try again later.")
		return
	}

	h.reply(s, m, "Your suggestion has been sent to moderation.")
}

// firstImageAttachment returns the URL of the first image attachment, if any.
func firstImageAttachment(msg *discordgo.Message) string {
	for _, att := range msg.Attachments {
		if att == nil {
			continue
		}
		if strings.HasPrefix(att.ContentType, "image/") {
			return att.URL
		}
	}
	return ""
}

func (h *Handler) reply(s *discordgo.Session, m *discordgo.MessageCreate, text string) {
	if _, err := s.ChannelMessageSendReply(m.ChannelID, text, m.Reference()); err != nil {
		h.log.Warn("failed to reply to submitter",
			zap.String("channel", m.ChannelID),
			zap.Error(err))
	}
}
