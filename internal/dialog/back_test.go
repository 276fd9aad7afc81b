package dialog

import (
	"testing"

	"storebot/internal/domain"
	"storebot/internal/session"
	"storebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGoBack_FromConfirmToProductListing(t *testing.T) {
	f := newEngineFixture(t)
	const userID = int64(7)

	f.sessions.Set(userID, session.Session{
		State: session.StateConfirm,
		Data:  session.Data{Region: "North", City: "Metropolis", Store: "Corner Shop", Product: "Widget"},
	})
	f.catalog.On("ListProducts", "North", "Metropolis", "Corner Shop").
		Return([]domain.ProductListing{{Name: "Widget", Price: 25}}, nil)

	render, err := f.selection(userID, TokenBack)
	require.NoError(t, err)
	assert.Contains(t, optionTokens(render), "product:Widget")
	assert.Equal(t, session.StateProduct, f.sessions.CurrentState(userID))
}

func TestGoBack_FromConfirmWithoutStoreData(t *testing.T) {
	f := newEngineFixture(t)
	const userID = int64(7)

	f.sessions.Set(userID, session.Session{State: session.StateConfirm})

	render, err := f.selection(userID, TokenBack)
	require.NoError(t, err)
	assert.Equal(t, alertNoStoreData, render.Alert)
	assert.True(t, render.BlockingAlert)
}

func TestGoBack_FromProductToStoreListing(t *testing.T) {
	f := newEngineFixture(t)
	const userID = int64(7)

	f.sessions.Set(userID, session.Session{
		State: session.StateProduct,
		Data:  session.Data{Region: "North", City: "Metropolis", Store: "Corner Shop"},
	})
	f.catalog.On("ListStores", "North", "Metropolis").
		Return([]string{"Corner Shop", "Main Street"}, nil)

	render, err := f.selection(userID, TokenBack)
	require.NoError(t, err)
	assert.Contains(t, optionTokens(render), "store:Main Street")
	assert.Equal(t, session.StateStore, f.sessions.CurrentState(userID))
	f.accounts.AssertNotCalled(t, "GetUser", mock.Anything)
}

func TestGoBack_FromProductWithoutLocationData(t *testing.T) {
	f := newEngineFixture(t)
	const userID = int64(7)

	f.sessions.Set(userID, session.Session{
		State: session.StateProduct,
		Data:  session.Data{Region: "North"},
	})

	render, err := f.selection(userID, TokenBack)
	require.NoError(t, err)
	assert.Equal(t, alertNoLocationData, render.Alert)
	assert.True(t, render.BlockingAlert)
	assert.Equal(t, session.StateProduct, f.sessions.CurrentState(userID))
}

func TestGoBack_FromStoreDependsOnMenuSource(t *testing.T) {
	tests := []struct {
		name       string
		menuSource session.MenuSource
		wantState  session.State
	}{
		{"entered via locations", session.MenuSourceMainMenu, session.StateMainMenu},
		{"entered via change city", session.MenuSourceChangeCity, session.StateMainMenu},
		{"entered via region walk", session.MenuSourceNone, session.StateCity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			const userID = int64(7)

			f.sessions.Set(userID, session.Session{
				State: session.StateStore,
				Data:  session.Data{Region: "North", City: "Metropolis", MenuSource: tt.menuSource},
			})
			f.accounts.On("GetUser", userID).Return(testutil.NewTestUser(userID, "Metropolis"), nil)
			f.catalog.On("ListCities", "North").Return([]string{"Metropolis"}, nil)

			render, err := f.selection(userID, TokenBack)
			require.NoError(t, err)
			require.NotNil(t, render)
			assert.Equal(t, tt.wantState, f.sessions.CurrentState(userID))
		})
	}
}

func TestGoBack_FromStoreWithoutRegionData(t *testing.T) {
	f := newEngineFixture(t)
	const userID = int64(7)

	f.sessions.Set(userID, session.Session{State: session.StateStore})

	render, err := f.selection(userID, TokenBack)
	require.NoError(t, err)
	assert.Equal(t, alertNoRegionData, render.Alert)
	assert.True(t, render.BlockingAlert)
}

func TestGoBack_FromCityToRegionListing(t *testing.T) {
	f := newEngineFixture(t)
	const userID = int64(7)

	f.sessions.Set(userID, session.Session{
		State: session.StateCity,
		Data:  session.Data{Region: "North"},
	})
	f.catalog.On("ListRegions").Return([]string{"North", "South"}, nil)

	render, err := f.selection(userID, TokenBack)
	require.NoError(t, err)
	assert.Equal(t, textChooseRegion, render.Text)
	assert.Contains(t, optionTokens(render), "region:South")
	assert.Contains(t, optionTokens(render), TokenBack)
	assert.Equal(t, session.StateRegion, f.sessions.CurrentState(userID))
}

func TestGoBack_FromRegionAndInfoToMainMenu(t *testing.T) {
	for _, state := range []session.State{session.StateRegion, session.StateInfo} {
		t.Run(string(state), func(t *testing.T) {
			f := newEngineFixture(t)
			const userID = int64(7)

			f.sessions.Set(userID, session.Session{State: state})
			f.accounts.On("GetUser", userID).Return(testutil.NewTestUser(userID, ""), nil)

			render, err := f.selection(userID, TokenBack)
			require.NoError(t, err)
			assert.Len(t, render.Options, 7)
			assert.True(t, render.ReplacePrevious)
			assert.Equal(t, session.StateMainMenu, f.sessions.CurrentState(userID))
		})
	}
}

func TestGoBack_NothingToGoBackTo(t *testing.T) {
	states := []session.State{
		session.StateNone,
		session.StateCaptcha,
		session.StateReferral,
		session.StateMainMenu,
	}

	for _, state := range states {
		t.Run(string(state), func(t *testing.T) {
			f := newEngineFixture(t)
			const userID = int64(7)

			if state != session.StateNone {
				f.sessions.Set(userID, session.Session{State: state})
			}

			render, err := f.selection(userID, TokenBack)
			require.NoError(t, err)
			assert.Equal(t, alertNoFurtherBack, render.Alert)
			assert.False(t, render.BlockingAlert)
			assert.Equal(t, state, f.sessions.CurrentState(userID))
		})
	}
}

func TestGoBack_StaleCatalogFallsBackToAlert(t *testing.T) {
	f := newEngineFixture(t)
	const userID = int64(7)

	f.sessions.Set(userID, session.Session{
		State: session.StateProduct,
		Data:  session.Data{Region: "North", City: "Metropolis", Store: "Corner Shop"},
	})
	f.catalog.On("ListStores", "North", "Metropolis").Return([]string{}, nil)

	render, err := f.selection(userID, TokenBack)
	require.NoError(t, err)
	assert.Equal(t, alertNoStores, render.Alert)
	assert.True(t, render.BlockingAlert)
}
