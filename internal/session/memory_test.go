package session

import (
	"testing"

	"storebot/internal/captcha"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_GetDefault(t *testing.T) {
	store := NewMemoryStore()

	sess := store.Get(1)
	assert.Equal(t, StateNone, sess.State)
	assert.Equal(t, Data{}, sess.Data)
	assert.Equal(t, StateNone, store.CurrentState(1))
}

func TestMemoryStore_ReadAfterWrite(t *testing.T) {
	store := NewMemoryStore()

	store.Set(1, Session{State: StateRegion, Data: Data{Region: "North"}})

	sess := store.Get(1)
	assert.Equal(t, StateRegion, sess.State)
	assert.Equal(t, "North", sess.Data.Region)
	assert.Equal(t, StateRegion, store.CurrentState(1))

	// an update within the same turn is visible immediately
	store.Update(1, func(s *Session) {
		s.Data.City = "Metropolis"
		s.State = StateCity
	})
	sess = store.Get(1)
	assert.Equal(t, StateCity, sess.State)
	assert.Equal(t, "North", sess.Data.Region)
	assert.Equal(t, "Metropolis", sess.Data.City)
}

func TestMemoryStore_UpdateCreatesSession(t *testing.T) {
	store := NewMemoryStore()

	store.Update(7, func(s *Session) {
		s.State = StateCaptcha
		s.Data.Captcha = &captcha.Challenge{Question: "2+3", Answer: "5"}
	})

	sess := store.Get(7)
	assert.Equal(t, StateCaptcha, sess.State)
	assert.Equal(t, "5", sess.Data.Captcha.Answer)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()

	store.Set(1, Session{State: StateConfirm, Data: Data{Store: "Corner Shop"}})
	store.Clear(1)

	sess := store.Get(1)
	assert.Equal(t, StateNone, sess.State)
	assert.Empty(t, sess.Data.Store)
}

func TestMemoryStore_NoCrossUserSharing(t *testing.T) {
	store := NewMemoryStore()

	store.Set(1, Session{State: StateRegion, Data: Data{Region: "North"}})
	store.Set(2, Session{State: StateCity, Data: Data{Region: "South"}})

	assert.Equal(t, "North", store.Get(1).Data.Region)
	assert.Equal(t, "South", store.Get(2).Data.Region)

	store.Clear(1)
	assert.Equal(t, StateNone, store.CurrentState(1))
	assert.Equal(t, StateCity, store.CurrentState(2))
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()

	store.Set(1, Session{State: StateStore, Data: Data{Store: "Original"}})

	sess := store.Get(1)
	sess.Data.Store = "Mutated"

	assert.Equal(t, "Original", store.Get(1).Data.Store)
}
