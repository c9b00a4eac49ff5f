package suggest

import (
	"suggestbox/model"
	"suggestbox/moderation"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Notifier implements moderation.Notifier over a Discord session.
type Notifier struct {
	session *discordgo.Session
	cfg     *model.Config
	log     *zap.Logger
}

var _ moderation.Notifier = (*Notifier)(nil)

// NewNotifier builds the Discord-backed notification fan-out.
func NewNotifier(session *discordgo.Session, cfg *model.Config, log *zap.Logger) *Notifier {
	return &Notifier{session: session, cfg: cfg, log: log}
}

// SendPrompt posts the moderation prompt to the review channel.
func (n *Notifier) SendPrompt(sub *model.Submission) error {
	_, err := n.session.ChannelMessageSendComplex(n.cfg.Suggest.ReviewChannelID, &discordgo.MessageSend{
		Embed:      promptEmbed(sub),
		Components: promptComponents(sub),
	})
	return err
}

// NotifySubmitter sends a direct message to the submitter.
func (n *Notifier) NotifySubmitter(userID, text string) error {
	channel, err := n.session.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = n.session.ChannelMessageSend(channel.ID, text)
	return err
}

// Publish posts the suggestion to the public channel and returns the
// reference used to build the submitter's link.
func (n *Notifier) Publish(sub *model.Submission) (moderation.PublishedRef, error) {
	send := &discordgo.MessageSend{Content: sub.Content}
	if sub.HasImage() {
		send = &discordgo.MessageSend{
			Embed: &discordgo.MessageEmbed{
				Description: sub.Content,
				Image:       &discordgo.MessageEmbedImage{URL: sub.ImageRef},
			},
		}
	}

	msg, err := n.session.ChannelMessageSendComplex(n.cfg.Suggest.PublishChannelID, send)
	if err != nil {
		return moderation.PublishedRef{}, err
	}

	return moderation.PublishedRef{
		GuildID:   n.cfg.GuildID,
		ChannelID: n.cfg.Suggest.PublishChannelID,
		MessageID: msg.ID,
	}, nil
}

// NotifyModerators posts a status note to the review channel.
func (n *Notifier) NotifyModerators(text string) error {
	_, err := n.session.ChannelMessageSend(n.cfg.Suggest.ReviewChannelID, text)
	return err
}
