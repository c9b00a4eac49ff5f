package suggest

import (
	"suggestbox/command/def"
	"suggestbox/db"
	"suggestbox/handler"
	"suggestbox/model"
	"suggestbox/moderation"
	"suggestbox/queue"

	"go.uber.org/zap"
)

// Handler wires the suggestion pipeline to Discord events.
type Handler struct {
	cfg     *model.Config
	proc    *moderation.Processor
	pending *queue.PendingQueue
	letters *moderation.DeadLetter
	store   *db.Store
	log     *zap.Logger
}

// New builds the handler from the composition root's collaborators.
func New(cfg *model.Config, proc *moderation.Processor, pending *queue.PendingQueue, letters *moderation.DeadLetter, store *db.Store, log *zap.Logger) *Handler {
	return &Handler{
		cfg:     cfg,
		proc:    proc,
		pending: pending,
		letters: letters,
		store:   store,
		log:     log,
	}
}

// Register registers all interaction handlers for the suggest package.
func (h *Handler) Register() {
	handler.AddCommandHandler(def.StatusCommand.Name, h.StatusCommandHandler)

	// 审核相关处理器
	handler.AddComponentHandler(string(moderation.ActionPublish), h.DecisionHandler)
	handler.AddComponentHandler(string(moderation.ActionReject), h.DecisionHandler)
	handler.AddComponentHandler(string(moderation.ActionErase), h.DecisionHandler)
}
