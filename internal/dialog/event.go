package dialog

import "strings"

// EventKind distinguishes free text from button selections
type EventKind string

const (
	KindText      EventKind = "text"
	KindSelection EventKind = "selection"
)

// Event is an inbound transport event tagged with a user identity
type Event struct {
	UserID  int64
	Kind    EventKind
	Payload string
}

// Control tokens carried as bare selection payloads
const (
	TokenBack       = "back"
	TokenCancel     = "cancel"
	TokenConfirm    = "confirm"
	TokenBackToMenu = "back_to_menu"
)

// Main menu action tokens
const (
	TokenMenuLocations  = "menu_locations"
	TokenMenuJobs       = "menu_jobs"
	TokenMenuPurchases  = "menu_purchases"
	TokenMenuRules      = "menu_rules"
	TokenMenuInfo       = "menu_info"
	TokenMenuReviews    = "menu_reviews"
	TokenMenuChangeCity = "menu_change_city"
)

// Selection payload prefixes for catalog choices
const (
	tagRegion  = "region"
	tagCity    = "city"
	tagStore   = "store"
	tagProduct = "product"
)

// splitSelection splits a colon-delimited selection payload into its
// tag and value. Bare control tokens come back with an empty value.
func splitSelection(payload string) (tag, value string) {
	if i := strings.Index(payload, ":"); i >= 0 {
		return payload[:i], payload[i+1:]
	}
	return payload, ""
}

// selectionToken builds a colon-delimited selection payload
func selectionToken(tag, value string) string {
	return tag + ":" + value
}
