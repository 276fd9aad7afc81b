// Package dialog implements the conversation state machine: given the
// current state, the session data and an inbound event it decides the
// next state, the data mutations and the next render instruction.
package dialog

import (
	"fmt"
	"strings"

	"storebot/internal/captcha"
	"storebot/internal/service"
	"storebot/internal/session"

	"go.uber.org/zap"
)

// Engine resolves (state, event, session) into renders and side effects
type Engine struct {
	sessions   session.Store
	catalog    *service.CatalogService
	accounts   *service.AccountService
	captchaGen *captcha.Generator
	logger     *zap.Logger
}

// NewEngine creates a dialog engine
func NewEngine(
	sessions session.Store,
	catalog *service.CatalogService,
	accounts *service.AccountService,
	captchaGen *captcha.Generator,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		sessions:   sessions,
		catalog:    catalog,
		accounts:   accounts,
		captchaGen: captchaGen,
		logger:     logger,
	}
}

// HandleEvent processes one inbound event and returns the render for
// this turn. A nil render with a nil error means the event produced no
// visible response.
func (e *Engine) HandleEvent(ev Event) (*Render, error) {
	switch ev.Kind {
	case KindText:
		return e.handleText(ev)
	case KindSelection:
		return e.handleSelection(ev)
	}
	return nil, nil
}

// handleText covers /start plus the two text-input states
func (e *Engine) handleText(ev Event) (*Render, error) {
	text := strings.TrimSpace(ev.Payload)
	if text == "/start" {
		return e.start(ev.UserID)
	}

	switch e.sessions.CurrentState(ev.UserID) {
	case session.StateCaptcha:
		return e.answerCaptcha(ev.UserID, text)
	case session.StateReferral:
		return e.answerReferral(ev.UserID, text)
	case session.StateNone:
		exists, err := e.accounts.UserExists(ev.UserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return e.beginCaptcha(ev.UserID)
		}
		return nil, nil
	default:
		// free text outside the input states is ignored
		return nil, nil
	}
}

// start clears any session and re-enters the dialog: MAIN_MENU for a
// registered identity, CAPTCHA otherwise
func (e *Engine) start(userID int64) (*Render, error) {
	e.sessions.Clear(userID)

	exists, err := e.accounts.UserExists(userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return e.mainMenuRender(userID, false)
	}
	return e.beginCaptcha(userID)
}

// beginCaptcha generates a fresh challenge and prompts for the answer
func (e *Engine) beginCaptcha(userID int64) (*Render, error) {
	ch := e.captchaGen.Generate()
	e.sessions.Set(userID, session.Session{
		State: session.StateCaptcha,
		Data:  session.Data{Captcha: &ch},
	})
	return &Render{Text: fmt.Sprintf("Captcha: %s = ?", ch.Question)}, nil
}

// answerCaptcha checks the answer against the pending challenge. A
// wrong answer resets the whole session so the next message gets a
// freshly generated challenge; this throttles brute-forcing.
func (e *Engine) answerCaptcha(userID int64, text string) (*Render, error) {
	sess := e.sessions.Get(userID)
	if sess.Data.Captcha == nil {
		return e.beginCaptcha(userID)
	}

	if text != sess.Data.Captcha.Answer {
		e.sessions.Clear(userID)
		return &Render{Text: textCaptchaWrong}, nil
	}

	e.sessions.Update(userID, func(s *session.Session) {
		s.State = session.StateReferral
		s.Data.Captcha = nil
	})
	return &Render{Text: textReferralPrompt}, nil
}

// answerReferral validates the code word and completes registration.
// An invalid code re-prompts without resetting the session.
func (e *Engine) answerReferral(userID int64, code string) (*Render, error) {
	valid, err := e.accounts.IsValidCode(code)
	if err != nil {
		return nil, err
	}
	if !valid {
		return &Render{Text: textReferralWrong}, nil
	}

	if _, err := e.accounts.Register(userID, code); err != nil {
		return nil, err
	}
	e.sessions.Update(userID, func(s *session.Session) {
		s.Data.ReferralCode = code
	})

	e.logger.Info("user registered", zap.Int64("user_id", userID))

	menu, err := e.mainMenuRender(userID, false)
	if err != nil {
		return nil, err
	}
	menu.Text = textRegistered + "\n\n" + menu.Text
	return menu, nil
}

// handleSelection routes button presses: control tokens first, then
// the per-state selection handlers
func (e *Engine) handleSelection(ev Event) (*Render, error) {
	switch ev.Payload {
	case TokenCancel:
		return e.cancel(ev.UserID)
	case TokenBackToMenu:
		return e.mainMenuRender(ev.UserID, true)
	case TokenBack:
		return e.goBack(ev.UserID)
	}

	state := e.sessions.CurrentState(ev.UserID)
	tag, value := splitSelection(ev.Payload)

	switch state {
	case session.StateMainMenu:
		return e.menuAction(ev.UserID, ev.Payload)
	case session.StateRegion:
		if tag == tagRegion {
			return e.chooseRegion(ev.UserID, value)
		}
	case session.StateCity:
		if tag == tagCity {
			return e.chooseCity(ev.UserID, value)
		}
	case session.StateStore:
		if tag == tagStore {
			return e.chooseStore(ev.UserID, value)
		}
	case session.StateProduct:
		if tag == tagProduct {
			return e.chooseProduct(ev.UserID, value)
		}
	case session.StateConfirm:
		if ev.Payload == TokenConfirm {
			return e.confirmOrder(ev.UserID)
		}
	}

	e.logger.Debug("unhandled selection",
		zap.Int64("user_id", ev.UserID),
		zap.String("payload", ev.Payload),
		zap.String("state", string(state)),
	)
	return nil, nil
}

// cancel clears the session from any state
func (e *Engine) cancel(userID int64) (*Render, error) {
	e.sessions.Clear(userID)
	return &Render{Text: textCancelled, ReplacePrevious: true}, nil
}
