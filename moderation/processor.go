package moderation

import (
	"fmt"
	"strings"
	"time"

	"suggestbox/model"
	"suggestbox/queue"

	"go.uber.org/zap"
)

// Store is the persistence gateway for terminal outcomes. At-most-one Create
// per submission id is the processor's responsibility, not the store's.
type Store interface {
	Create(sub *model.Submission) error
}

// PublishedRef points at a message posted to the public channel.
type PublishedRef struct {
	GuildID   string
	ChannelID string
	MessageID string
}

// Link returns the canonical URL of the published message.
func (r PublishedRef) Link() string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", r.GuildID, r.ChannelID, r.MessageID)
}

// Notifier is the outbound side of the messaging transport.
type Notifier interface {
	// SendPrompt renders the moderation prompt for a pending submission.
	SendPrompt(sub *model.Submission) error
	// NotifySubmitter sends a direct message to the submitter. Best effort.
	NotifySubmitter(userID, text string) error
	// Publish posts the submission to the public channel and returns a
	// reference used to build the submitter's link. Awaited synchronously.
	Publish(sub *model.Submission) (PublishedRef, error)
	// NotifyModerators posts a status note to the moderation surface.
	NotifyModerators(text string) error
}

// Prompter is the moderation prompt a decision arrived on: the ack toast and
// the in-place edit that shows the outcome and collapses the buttons.
type Prompter interface {
	Ack(text string) error
	EditOutcome(sub *model.Submission) error
}

// Processor owns the submission state machine: intake into the pending queue
// and the pending -> published/rejected/erased transition.
type Processor struct {
	pending  *queue.PendingQueue
	store    Store
	notifier Notifier
	fallback *DeadLetter
	log      *zap.Logger
}

// NewProcessor wires the state machine to its collaborators.
func NewProcessor(pending *queue.PendingQueue, store Store, notifier Notifier, fallback *DeadLetter, log *zap.Logger) *Processor {
	return &Processor{
		pending:  pending,
		store:    store,
		notifier: notifier,
		fallback: fallback,
		log:      log,
	}
}

// Submit builds a pending submission from decoded inbound content, enqueues
// it, and dispatches the moderation prompt. Returns ErrEmptySubmission when
// neither text nor image is present; nothing is enqueued in that case.
func (p *Processor) Submit(submitterID, submitterHandle, content, imageRef string) (*model.Submission, error) {
	content = strings.TrimSpace(content)
	if content == "" && imageRef == "" {
		return nil, ErrEmptySubmission
	}
	if content == "" {
		return nil, ErrMissingCaption
	}

	sub := &model.Submission{
		ID:              model.NewSubmissionID(),
		SubmitterID:     submitterID,
		SubmitterHandle: submitterHandle,
		Content:         content,
		ImageRef:        imageRef,
		Status:          model.StatusPending,
		SubmittedAt:     time.Now().Unix(),
	}

	p.pending.Insert(sub)

	if err := p.notifier.SendPrompt(sub); err != nil {
		// The item stays pending but moderators cannot see it. Accepted gap;
		// log the id so an operator can correlate.
		p.log.Error("failed to dispatch moderation prompt",
			zap.Int64("id", sub.ID),
			zap.Error(err))
	}

	p.log.Info("suggestion queued",
		zap.Int64("id", sub.ID),
		zap.String("submitter", submitterID),
		zap.Bool("image", sub.HasImage()))

	return sub, nil
}

// Decide runs one moderator decision against a pending submission.
//
// The stale guard and the queue removal are a single critical section
// (PendingQueue.Take), so a second decision on the same id can never observe
// it as pending. That is the whole at-most-once contract. Everything after
// the Take is best effort: no side-effect failure stops the later ones, and
// none of them can crash the process.
func (p *Processor) Decide(action Action, id int64, moderatorID string, prompt Prompter) error {
	switch action {
	case ActionPublish, ActionReject, ActionErase:
	default:
		return fmt.Errorf("%w: action %q", ErrBadToken, action)
	}

	sub, ok := p.pending.Take(id)
	if !ok {
		if err := prompt.Ack("This suggestion can no longer be processed."); err != nil {
			p.log.Warn("failed to ack stale action", zap.Int64("id", id), zap.Error(err))
		}
		return ErrStaleAction
	}

	sub.ReviewerID = moderatorID
	sub.DecidedAt = time.Now().Unix()

	if action == ActionErase {
		p.erase(sub, prompt)
		return nil
	}

	if action == ActionPublish {
		sub.Status = model.StatusPublished
		p.ack(prompt, sub, "Suggestion approved for publication.")
	} else {
		sub.Status = model.StatusRejected
		p.ack(prompt, sub, "Suggestion rejected.")
	}

	if err := p.store.Create(sub); err != nil {
		entry := p.fallback.Add(sub, err)
		p.log.Error("failed to persist suggestion, kept in dead letter",
			zap.Int64("id", sub.ID),
			zap.String("status", string(sub.Status)),
			zap.String("ref", entry.Ref),
			zap.Error(err))

		alert := fmt.Sprintf("⚠️ Failed to save suggestion #%d (%s): %v\nKept in memory as `%s`.",
			sub.ID, sub.Status, err, entry.Ref)
		if nerr := p.notifier.NotifyModerators(alert); nerr != nil {
			p.log.Warn("failed to alert moderators", zap.Int64("id", sub.ID), zap.Error(nerr))
		}
	}

	p.editPrompt(prompt, sub)
	p.fanOut(sub)

	p.log.Info("suggestion decided",
		zap.Int64("id", sub.ID),
		zap.String("status", string(sub.Status)),
		zap.String("moderator", moderatorID))

	return nil
}

// erase drops a submission without a trace: no database row, and the
// submitter is invited to send a fresh one.
func (p *Processor) erase(sub *model.Submission, prompt Prompter) {
	sub.Status = model.StatusErased

	p.ack(prompt, sub, "Suggestion erased.")
	p.editPrompt(prompt, sub)

	if err := p.notifier.NotifySubmitter(sub.SubmitterID,
		"Your suggestion was removed. Feel free to send a new one."); err != nil {
		p.log.Warn("failed to notify submitter", zap.Int64("id", sub.ID), zap.Error(err))
	}

	p.log.Info("suggestion erased",
		zap.Int64("id", sub.ID),
		zap.String("moderator", sub.ReviewerID))
}

// fanOut sends the outcome notifications. On publish, the public post happens
// first because the submitter's message needs its link.
func (p *Processor) fanOut(sub *model.Submission) {
	switch sub.Status {
	case model.StatusPublished:
		text := "Your suggestion has been published!"
		ref, err := p.notifier.Publish(sub)
		if err != nil {
			p.log.Error("failed to post to public channel", zap.Int64("id", sub.ID), zap.Error(err))
		} else {
			text = fmt.Sprintf("Your suggestion has been published! See it here: %s", ref.Link())
		}
		if err := p.notifier.NotifySubmitter(sub.SubmitterID, text); err != nil {
			p.log.Warn("failed to notify submitter", zap.Int64("id", sub.ID), zap.Error(err))
		}
	case model.StatusRejected:
		if err := p.notifier.NotifySubmitter(sub.SubmitterID, "Your suggestion was rejected."); err != nil {
			p.log.Warn("failed to notify submitter", zap.Int64("id", sub.ID), zap.Error(err))
		}
	}
}

func (p *Processor) ack(prompt Prompter, sub *model.Submission, text string) {
	if err := prompt.Ack(text); err != nil {
		p.log.Warn("failed to ack decision", zap.Int64("id", sub.ID), zap.Error(err))
	}
}

func (p *Processor) editPrompt(prompt Prompter, sub *model.Submission) {
	if err := prompt.EditOutcome(sub); err != nil {
		p.log.Warn("failed to edit moderation prompt", zap.Int64("id", sub.ID), zap.Error(err))
	}
}
