package testutil

import (
	"time"

	"storebot/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user; city may be empty for "not set"
func NewTestUser(telegramID int64, city string) *domain.User {
	u := &domain.User{
		UserID:     uuid.NewString(),
		TelegramID: telegramID,
		CreatedAt:  time.Now(),
	}
	if city != "" {
		u.City = &city
	}
	return u
}

// NewTestOrder creates a pending test order
func NewTestOrder(orderID, userID, productID string) *domain.Order {
	return &domain.Order{
		OrderID:   orderID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
	}
}
