// Package session keeps per-user conversation state. Sessions are
// ephemeral: they live in memory, are created lazily on first use and
// are lost on restart.
package session

import "storebot/internal/captcha"

// State identifies the current step of a user's dialog
type State string

const (
	// StateNone means the user has no active session
	StateNone     State = ""
	StateCaptcha  State = "captcha"
	StateReferral State = "referral"
	StateRegion   State = "region"
	StateCity     State = "city"
	StateStore    State = "store"
	StateProduct  State = "product"
	StateConfirm  State = "confirm"
	StateMainMenu State = "main_menu"
	StateInfo     State = "info_screen"
)

// MenuSource marks how the user entered the region/city selection,
// which shapes back navigation out of the store listing.
type MenuSource string

const (
	MenuSourceNone       MenuSource = ""
	MenuSourceMainMenu   MenuSource = "main_menu"
	MenuSourceChangeCity MenuSource = "change_city"
)

// Data carries the fields the dialog transitions need. Selections are
// written forward-only; back navigation re-derives screens from them.
type Data struct {
	Region       string
	City         string
	Store        string
	Product      string
	MenuSource   MenuSource
	ReferralCode string
	Captcha      *captcha.Challenge
}

// Session is the per-user state tag plus its data
type Session struct {
	State State
	Data  Data
}

// Store manages sessions keyed by external user identity.
// Implementations must guarantee read-after-write within a dialog turn
// and isolation across users.
type Store interface {
	Get(userID int64) Session
	Set(userID int64, s Session)
	Update(userID int64, fn func(*Session))
	Clear(userID int64)
	CurrentState(userID int64) State
}
