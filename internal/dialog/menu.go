package dialog

import (
	"fmt"

	"storebot/internal/session"
)

// mainMenuRender shows the steady-state menu. Other session data is
// left untouched so menu re-entry does not lose selections.
func (e *Engine) mainMenuRender(userID int64, replace bool) (*Render, error) {
	user, err := e.accounts.GetUser(userID)
	if err != nil {
		return nil, err
	}

	greeting := "Welcome to the store! 👋"
	if e.sessions.CurrentState(userID) == session.StateMainMenu {
		greeting = "Welcome back! 👋"
	}

	city := "not selected"
	changeCityLabel := "🌆 Choose city"
	if user.HasCity() {
		city = user.CityName()
		changeCityLabel = "🔄 Change city"
	}

	text := fmt.Sprintf(
		"%s\n\n👤 Your ID: %d\n🌍 City: %s\n\n👇 Choose an option:",
		greeting, userID, city,
	)

	options := []Option{
		{Label: "📍 Locations", Token: TokenMenuLocations},
		{Label: "💼 Jobs", Token: TokenMenuJobs},
		{Label: "🛒 Purchases", Token: TokenMenuPurchases},
		{Label: "📜 Rules", Token: TokenMenuRules},
		{Label: "ℹ️ Info", Token: TokenMenuInfo},
		{Label: changeCityLabel, Token: TokenMenuChangeCity},
		{Label: "⭐ Reviews", Token: TokenMenuReviews},
	}

	e.sessions.Update(userID, func(s *session.Session) {
		s.State = session.StateMainMenu
	})

	return &Render{Text: text, Options: options, ReplacePrevious: replace}, nil
}

// menuAction dispatches the seven mutually exclusive main-menu actions
func (e *Engine) menuAction(userID int64, token string) (*Render, error) {
	switch token {
	case TokenMenuLocations:
		return e.menuLocations(userID)
	case TokenMenuChangeCity:
		return e.menuChangeCity(userID)
	}
	if text, ok := infoScreens[token]; ok {
		return e.infoScreen(userID, text)
	}
	return nil, nil
}

// infoScreen renders a static screen with a single back-to-menu button
func (e *Engine) infoScreen(userID int64, text string) (*Render, error) {
	e.sessions.Update(userID, func(s *session.Session) {
		s.State = session.StateInfo
	})
	return &Render{
		Text:            text,
		Options:         []Option{{Label: labelBackToMenu, Token: TokenBackToMenu}},
		ReplacePrevious: true,
	}, nil
}

// menuLocations branches on the saved city: with one, the user jumps
// straight to its store listing; without one (or when the city has no
// stores anymore) the region listing is shown instead.
func (e *Engine) menuLocations(userID int64) (*Render, error) {
	e.sessions.Update(userID, func(s *session.Session) {
		s.Data.MenuSource = session.MenuSourceMainMenu
	})

	user, err := e.accounts.GetUser(userID)
	if err != nil {
		return nil, err
	}

	var alertText string
	if user.HasCity() {
		city := user.CityName()
		region, err := e.catalog.RegionOf(city)
		if err != nil {
			return nil, err
		}
		if region == "" {
			alertText = alertCityGone
		} else {
			e.sessions.Update(userID, func(s *session.Session) {
				s.Data.Region = region
				s.Data.City = city
			})
			stores, err := e.catalog.ListStores(region, city)
			if err != nil {
				return nil, err
			}
			if len(stores) > 0 {
				e.sessions.Update(userID, func(s *session.Session) {
					s.State = session.StateStore
				})
				render := storeListRender(region, city, stores)
				render.Text = fmt.Sprintf(
					"Saved region: %s\nSaved city: %s\nChoose a store:",
					region, city,
				)
				return render, nil
			}
			alertText = alertNoStores
		}
	}

	regions, err := e.catalog.ListRegions()
	if err != nil {
		return nil, err
	}
	e.sessions.Update(userID, func(s *session.Session) {
		s.State = session.StateRegion
	})

	// entry screen of the flow, nothing to go back to yet
	render := regionListRender(regions, textChooseRegion, false)
	render.Alert = alertText
	render.BlockingAlert = alertText != ""
	return render, nil
}

// menuChangeCity always enters the region listing, marked so that the
// city step returns straight to the menu
func (e *Engine) menuChangeCity(userID int64) (*Render, error) {
	e.sessions.Update(userID, func(s *session.Session) {
		s.Data.MenuSource = session.MenuSourceChangeCity
	})

	regions, err := e.catalog.ListRegions()
	if err != nil {
		return nil, err
	}
	e.sessions.Update(userID, func(s *session.Session) {
		s.State = session.StateRegion
	})
	return regionListRender(regions, textChooseRegionForCity, true), nil
}
