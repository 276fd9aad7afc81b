package domain

import "time"

// User represents a registered bot user
type User struct {
	UserID       string    `db:"user_id"`
	TelegramID   int64     `db:"telegram_id"`
	City         *string   `db:"city"`
	ReferralCode *string   `db:"referral_code"`
	CreatedAt    time.Time `db:"created_at"`
}

// HasCity reports whether the user has a saved city
func (u *User) HasCity() bool {
	return u != nil && u.City != nil && *u.City != ""
}

// CityName returns the saved city or an empty string
func (u *User) CityName() string {
	if u == nil || u.City == nil {
		return ""
	}
	return *u.City
}

// ReferralCode is a pre-provisioned registration code.
// One code may be redeemed by any number of users.
type ReferralCode struct {
	Code      string    `db:"code"`
	CreatedAt time.Time `db:"created_at"`
}
