package service

import (
	"fmt"

	"storebot/internal/domain"
	"storebot/internal/repository"

	"github.com/google/uuid"
)

// AccountService handles registration, referral checks and orders
type AccountService struct {
	accountRepo repository.AccountRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// UserExists checks if the identity is already registered
func (s *AccountService) UserExists(telegramID int64) (bool, error) {
	return s.accountRepo.UserExists(telegramID)
}

// GetUser returns the user record, or nil for an unregistered identity
func (s *AccountService) GetUser(telegramID int64) (*domain.User, error) {
	return s.accountRepo.GetUser(telegramID)
}

// IsValidCode checks the referral code against the registry
func (s *AccountService) IsValidCode(code string) (bool, error) {
	return s.accountRepo.CodeExists(code)
}

// Register creates a user for the identity with the given referral
// code. Registering an already-registered identity is a no-op that
// returns the existing record.
func (s *AccountService) Register(telegramID int64, code string) (*domain.User, error) {
	existing, err := s.accountRepo.GetUser(telegramID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	valid, err := s.accountRepo.CodeExists(code)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, fmt.Errorf("code %q: %w", code, domain.ErrInvalidReferral)
	}

	user := &domain.User{
		UserID:       uuid.NewString(),
		TelegramID:   telegramID,
		ReferralCode: &code,
	}
	if err := s.accountRepo.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetCity persists the user's chosen city
func (s *AccountService) SetCity(telegramID int64, city string) error {
	return s.accountRepo.SetCity(telegramID, city)
}

// CreateOrder places a pending order for the named product
func (s *AccountService) CreateOrder(telegramID int64, productName string) (*domain.Order, error) {
	return s.accountRepo.CreateOrder(telegramID, productName)
}
