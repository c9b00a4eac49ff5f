package suggest

import (
	"testing"

	"suggestbox/model"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSubmission() *model.Submission {
	return &model.Submission{
		ID:              1736418000123,
		SubmitterID:     "42",
		SubmitterHandle: "someone",
		Content:         "Hello",
		Status:          model.StatusPending,
	}
}

func TestPromptEmbed(t *testing.T) {
	sub := sampleSubmission()
	embed := promptEmbed(sub)

	assert.Contains(t, embed.Description, "<@42>")
	assert.Contains(t, embed.Description, "Hello")
	assert.Contains(t, embed.Footer.Text, "1736418000123")
	assert.Equal(t, colorPending, embed.Color)
	assert.Nil(t, embed.Image)
}

func TestPromptEmbed_WithImage(t *testing.T) {
	sub := sampleSubmission()
	sub.ImageRef = "https://cdn.example/img.png"

	embed := promptEmbed(sub)
	require.NotNil(t, embed.Image)
	assert.Equal(t, sub.ImageRef, embed.Image.URL)
}

func TestPromptComponents_TokensCarrySubmissionID(t *testing.T) {
	sub := sampleSubmission()

	rows := promptComponents(sub)
	require.Len(t, rows, 1)
	row, ok := rows[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 4)

	ids := make([]string, 0, 3)
	for _, comp := range row.Components {
		button, ok := comp.(discordgo.Button)
		require.True(t, ok)
		if button.Style == discordgo.LinkButton {
			assert.Equal(t, "https://discord.com/users/42", button.URL)
			assert.Empty(t, button.CustomID)
			continue
		}
		ids = append(ids, button.CustomID)
	}

	assert.Equal(t, []string{
		"publish_1736418000123",
		"reject_1736418000123",
		"erase_1736418000123",
	}, ids)
}

func TestOutcomeComponents_ContactOnly(t *testing.T) {
	rows := outcomeComponents(sampleSubmission())
	require.Len(t, rows, 1)
	row := rows[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 1)

	button := row.Components[0].(discordgo.Button)
	assert.Equal(t, discordgo.LinkButton, button.Style)
}

func TestOutcomeLine(t *testing.T) {
	sub := sampleSubmission()
	sub.ReviewerID = "mod-1"

	sub.Status = model.StatusPublished
	assert.Equal(t, "☑️ **Published** by <@mod-1>", outcomeLine(sub))

	sub.Status = model.StatusRejected
	assert.Equal(t, "🔘 **Rejected** by <@mod-1>", outcomeLine(sub))

	sub.Status = model.StatusErased
	assert.Equal(t, "🗑️ **Erased** by <@mod-1>", outcomeLine(sub))
}

func TestFirstImageAttachment(t *testing.T) {
	msg := &discordgo.Message{
		Attachments: []*discordgo.MessageAttachment{
			{ContentType: "application/pdf", URL: "https://cdn.example/doc.pdf"},
			{ContentType: "image/png", URL: "https://cdn.example/img.png"},
		},
	}
	assert.Equal(t, "https://cdn.example/img.png", firstImageAttachment(msg))

	assert.Empty(t, firstImageAttachment(&discordgo.Message{}))
}
