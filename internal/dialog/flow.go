package dialog

import (
	"fmt"

	"storebot/internal/domain"
	"storebot/internal/session"

	"go.uber.org/zap"
)

// listOptions turns catalog values into one option per value
func listOptions(tag string, values []string) []Option {
	options := make([]Option, 0, len(values))
	for _, v := range values {
		options = append(options, Option{Label: v, Token: selectionToken(tag, v)})
	}
	return options
}

// controlOptions builds the back/cancel controls
func controlOptions(back, cancel bool) []Option {
	var options []Option
	if back {
		options = append(options, Option{Label: labelBack, Token: TokenBack})
	}
	if cancel {
		options = append(options, Option{Label: labelCancel, Token: TokenCancel})
	}
	return options
}

// withControls appends controls after the value options
func withControls(options []Option, back, cancel bool) []Option {
	return append(options, controlOptions(back, cancel)...)
}

func regionListRender(regions []string, text string, back bool) *Render {
	return &Render{
		Text:            text,
		Options:         withControls(listOptions(tagRegion, regions), back, true),
		ReplacePrevious: true,
	}
}

func cityListRender(region string, cities []string) *Render {
	return &Render{
		Text:            fmt.Sprintf("Region: %s\nChoose a city:", region),
		Options:         withControls(listOptions(tagCity, cities), true, true),
		ReplacePrevious: true,
	}
}

func storeListRender(region, city string, stores []string) *Render {
	return &Render{
		Text:            fmt.Sprintf("Region: %s\nCity: %s\nChoose a store:", region, city),
		Options:         withControls(listOptions(tagStore, stores), true, true),
		ReplacePrevious: true,
	}
}

func productListRender(region, city, store string, products []domain.ProductListing) *Render {
	options := make([]Option, 0, len(products)+2)
	for _, p := range products {
		options = append(options, Option{
			Label: fmt.Sprintf("%s – $%d", p.Name, p.Price),
			Token: selectionToken(tagProduct, p.Name),
		})
	}
	return &Render{
		Text: fmt.Sprintf(
			"Region: %s\nCity: %s\nStore: %s\nChoose a product:",
			region, city, store,
		),
		Options:         withControls(options, true, true),
		ReplacePrevious: true,
	}
}

// chooseRegion lists the cities of the selected region
func (e *Engine) chooseRegion(userID int64, region string) (*Render, error) {
	cities, err := e.catalog.ListCities(region)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return alertRender(alertNoCities, false), nil
	}

	e.sessions.Update(userID, func(s *session.Session) {
		s.Data.Region = region
		s.State = session.StateCity
	})
	return cityListRender(region, cities), nil
}

// chooseCity persists the city to the account and either returns to
// the menu (change-city flow) or lists the city's stores
func (e *Engine) chooseCity(userID int64, city string) (*Render, error) {
	sess := e.sessions.Get(userID)

	if err := e.accounts.SetCity(userID, city); err != nil {
		return nil, err
	}
	e.sessions.Update(userID, func(s *session.Session) {
		s.Data.City = city
	})

	if sess.Data.MenuSource == session.MenuSourceChangeCity {
		menu, err := e.mainMenuRender(userID, true)
		if err != nil {
			return nil, err
		}
		menu.Alert = textCityChanged
		return menu, nil
	}

	region := sess.Data.Region
	stores, err := e.catalog.ListStores(region, city)
	if err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return alertRender(alertNoStores, true), nil
	}

	e.sessions.Update(userID, func(s *session.Session) {
		s.State = session.StateStore
	})
	return storeListRender(region, city, stores), nil
}

// chooseStore lists the inventory of the selected store
func (e *Engine) chooseStore(userID int64, store string) (*Render, error) {
	e.sessions.Update(userID, func(s *session.Session) {
		s.Data.Store = store
	})
	sess := e.sessions.Get(userID)

	products, err := e.catalog.ListProducts(sess.Data.Region, sess.Data.City, store)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return alertRender(alertNoProducts, true), nil
	}

	e.sessions.Update(userID, func(s *session.Session) {
		s.State = session.StateProduct
	})
	return productListRender(sess.Data.Region, sess.Data.City, store, products), nil
}

// chooseProduct renders the order summary for confirmation
func (e *Engine) chooseProduct(userID int64, product string) (*Render, error) {
	e.sessions.Update(userID, func(s *session.Session) {
		s.Data.Product = product
	})
	sess := e.sessions.Get(userID)

	description, err := e.catalog.ProductDescription(product)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf(
		"Order summary:\n"+
			"▫️ Region: %s\n"+
			"▫️ City: %s\n"+
			"▫️ Store: %s\n"+
			"▫️ Product: %s\n"+
			"▫️ Description: %s\n\n"+
			"Confirm the order?",
		sess.Data.Region, sess.Data.City, sess.Data.Store, product, description,
	)

	e.sessions.Update(userID, func(s *session.Session) {
		s.State = session.StateConfirm
	})
	return &Render{
		Text:            text,
		Options:         withControls([]Option{{Label: labelConfirm, Token: TokenConfirm}}, true, true),
		ReplacePrevious: true,
	}, nil
}

// confirmOrder creates the order and ends the conversation; the
// session is cleared entirely so the next /start re-enters fresh
func (e *Engine) confirmOrder(userID int64) (*Render, error) {
	sess := e.sessions.Get(userID)

	order, err := e.accounts.CreateOrder(userID, sess.Data.Product)
	if err != nil {
		return nil, err
	}
	e.sessions.Clear(userID)

	e.logger.Info("order created",
		zap.Int64("user_id", userID),
		zap.String("order_id", order.OrderID),
		zap.String("product", sess.Data.Product),
	)

	return &Render{
		Text: fmt.Sprintf(
			"✅ Order created!\nID: %s\nStatus: %s",
			order.OrderID, order.Status,
		),
		ReplacePrevious: true,
	}, nil
}
