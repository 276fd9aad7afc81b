package handler

import (
	"strings"
	"unicode"

	"storebot/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const genericErrorReply = "Something went wrong. Please try again."

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback turns a button press into a selection event
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	token := cleanCallbackData(callback.Data)
	userID := c.Sender().ID

	h.logger.Debug("processing callback",
		zap.Int64("user_id", userID),
		zap.String("token", token),
	)

	render, err := h.engine.HandleEvent(dialog.Event{
		UserID:  userID,
		Kind:    dialog.KindSelection,
		Payload: token,
	})
	return h.deliver(c, render, err)
}

// deliver turns a render instruction into transport calls. A store
// failure aborts the turn with a generic reply; one user's bad turn
// must never crash the process.
func (h *Handler) deliver(c tele.Context, render *dialog.Render, err error) error {
	if err != nil {
		h.logger.Error("dialog turn failed",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		if c.Callback() != nil {
			_ = c.Respond()
		}
		return c.Send(genericErrorReply)
	}

	if render == nil {
		if c.Callback() != nil {
			return c.Respond()
		}
		return nil
	}

	if render.Alert != "" && c.Callback() != nil {
		if err := c.Respond(&tele.CallbackResponse{
			Text:      render.Alert,
			ShowAlert: render.BlockingAlert,
		}); err != nil {
			h.logger.Warn("failed to answer callback", zap.Error(err))
		}
		if render.Text == "" {
			return nil
		}
	}

	markup := buildMarkup(render.Options)

	if render.ReplacePrevious && c.Callback() != nil {
		if err := h.edit(c, render.Text, markup); err != nil {
			return h.send(c, render.Text, markup)
		}
		if render.Alert == "" {
			return c.Respond()
		}
		return nil
	}

	return h.send(c, render.Text, markup)
}

// edit updates the last rendered message in place. An edit that
// reports unchanged content is treated as success.
func (h *Handler) edit(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	var err error
	if markup != nil {
		err = c.Edit(text, markup)
	} else {
		err = c.Edit(text)
	}
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("edit targeted identical content",
			zap.Int64("user_id", c.Sender().ID),
		)
		return nil
	}

	h.logger.Warn("failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
	)
	return err
}

func (h *Handler) send(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}

// buildMarkup renders options as an inline keyboard, one per row
func buildMarkup(options []dialog.Option) *tele.ReplyMarkup {
	if len(options) == 0 {
		return nil
	}
	rows := make([][]tele.InlineButton, 0, len(options))
	for _, o := range options {
		rows = append(rows, []tele.InlineButton{{Text: o.Label, Data: o.Token}})
	}
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}
