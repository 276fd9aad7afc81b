package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"storebot/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AccountRepo implements repository.AccountRepository
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// UserExists checks if a user is registered
func (r *AccountRepo) UserExists(telegramID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE telegram_id = $1)`
	err := r.db.Get(&exists, query, telegramID)
	return exists, err
}

// GetUser returns a user by telegram identity, or nil if not registered
func (r *AccountRepo) GetUser(telegramID int64) (*domain.User, error) {
	var u domain.User
	query := `
		SELECT user_id, telegram_id, city, referral_code, created_at
		FROM users
		WHERE telegram_id = $1
	`
	err := r.db.Get(&u, query, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CodeExists checks if a referral code is in the registry
func (r *AccountRepo) CodeExists(code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM referral_codes WHERE code = $1)`
	err := r.db.Get(&exists, query, code)
	return exists, err
}

// CreateUser inserts a new user record
func (r *AccountRepo) CreateUser(user *domain.User) error {
	query := `
		INSERT INTO users (user_id, telegram_id, city, referral_code)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, user.UserID, user.TelegramID, user.City, user.ReferralCode)
	return err
}

// SetCity saves the user's chosen city
func (r *AccountRepo) SetCity(telegramID int64, city string) error {
	query := `UPDATE users SET city = $2 WHERE telegram_id = $1`
	_, err := r.db.Exec(query, telegramID, city)
	return err
}

// CreateOrder creates a pending order with quantity 1 for the given
// user and product. Both rows are expected to exist: a missing one is
// an invariant violation reported as ErrNotFound.
func (r *AccountRepo) CreateOrder(telegramID int64, productName string) (*domain.Order, error) {
	var userID string
	err := r.db.Get(&userID, `SELECT user_id FROM users WHERE telegram_id = $1`, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", telegramID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var productID string
	err = r.db.Get(&productID, `SELECT product_id FROM products WHERE name = $1`, productName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %q: %w", productName, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderID:   uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
		Status:    domain.OrderStatusPending,
	}

	query := `
		INSERT INTO orders (order_id, user_id, product_id, quantity, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(query, order.OrderID, order.UserID, order.ProductID, order.Quantity, order.Status); err != nil {
		return nil, err
	}

	return order, nil
}
