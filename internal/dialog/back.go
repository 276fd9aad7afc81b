package dialog

import (
	"storebot/internal/session"
)

// goBack reconstructs the previous screen from the current state tag
// and session fields. There is no stack of visited states: selections
// mutate the session in place, so "back" re-derives the prior listing
// from fresh catalog queries instead of replaying history.
func (e *Engine) goBack(userID int64) (*Render, error) {
	sess := e.sessions.Get(userID)

	switch sess.State {
	case session.StateConfirm:
		// replaying the store selection re-derives the product listing
		if sess.Data.Store == "" {
			return alertRender(alertNoStoreData, true), nil
		}
		return e.chooseStore(userID, sess.Data.Store)

	case session.StateProduct:
		if sess.Data.Region == "" || sess.Data.City == "" {
			return alertRender(alertNoLocationData, true), nil
		}
		stores, err := e.catalog.ListStores(sess.Data.Region, sess.Data.City)
		if err != nil {
			return nil, err
		}
		if len(stores) == 0 {
			return alertRender(alertNoStores, true), nil
		}
		e.sessions.Update(userID, func(s *session.Session) {
			s.State = session.StateStore
		})
		return storeListRender(sess.Data.Region, sess.Data.City, stores), nil

	case session.StateStore:
		// the menu entry paths skipped region/city selection
		if sess.Data.MenuSource == session.MenuSourceMainMenu ||
			sess.Data.MenuSource == session.MenuSourceChangeCity {
			return e.mainMenuRender(userID, true)
		}
		if sess.Data.Region == "" {
			return alertRender(alertNoRegionData, true), nil
		}
		cities, err := e.catalog.ListCities(sess.Data.Region)
		if err != nil {
			return nil, err
		}
		if len(cities) == 0 {
			return alertRender(alertNoCities, true), nil
		}
		e.sessions.Update(userID, func(s *session.Session) {
			s.State = session.StateCity
		})
		return cityListRender(sess.Data.Region, cities), nil

	case session.StateCity:
		regions, err := e.catalog.ListRegions()
		if err != nil {
			return nil, err
		}
		if len(regions) == 0 {
			return alertRender(alertNoRegions, true), nil
		}
		e.sessions.Update(userID, func(s *session.Session) {
			s.State = session.StateRegion
		})
		return regionListRender(regions, textChooseRegion, true), nil

	case session.StateRegion, session.StateInfo:
		return e.mainMenuRender(userID, true)

	default:
		return alertRender(alertNoFurtherBack, false), nil
	}
}
