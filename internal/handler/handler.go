package handler

import (
	"storebot/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler adapts the Telegram transport to dialog engine events
type Handler struct {
	bot    *tele.Bot
	engine *dialog.Engine
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, engine *dialog.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		engine: engine,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// handleStart handles the /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("user started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	render, err := h.engine.HandleEvent(dialog.Event{
		UserID:  userID,
		Kind:    dialog.KindText,
		Payload: "/start",
	})
	return h.deliver(c, render, err)
}

// handleText forwards free text to the engine
func (h *Handler) handleText(c tele.Context) error {
	render, err := h.engine.HandleEvent(dialog.Event{
		UserID:  c.Sender().ID,
		Kind:    dialog.KindText,
		Payload: c.Text(),
	})
	return h.deliver(c, render, err)
}
