package identity

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/pickleworks/backend/internal/domain/identity"
	"github.com/pickleworks/backend/internal/domain/shared"
)

// AccountService handles registration and credential checks
type AccountService struct {
	accountRepo identity.AccountRepository
	eventBus    shared.EventPublisher
	logger      *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo identity.AccountRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Register creates a new account. The username is trimmed before the
// uniqueness check so "alice" and " alice " are the same account.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*AccountInfo, error) {
	username := strings.TrimSpace(input.Username)

	exists, err := s.accountRepo.ExistsByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Failed to check username availability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check username availability")
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	account, err := identity.NewAccount(input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.logger.Error("Failed to create account",
			zap.String("username", username),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	s.publishEvents(ctx, account)

	s.logger.Info("Account registered", zap.String("username", account.Username))

	return toAccountInfo(account), nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords return the same error so callers cannot probe for
// registered usernames.
func (s *AccountService) Authenticate(ctx context.Context, input LoginInput) (*AccountInfo, error) {
	username := strings.TrimSpace(input.Username)

	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Error("Failed to look up account", zap.Error(err))
		}
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !account.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	return toAccountInfo(account), nil
}

func (s *AccountService) publishEvents(ctx context.Context, account *identity.Account) {
	if s.eventBus == nil {
		return
	}
	for _, event := range account.GetDomainEvents() {
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Error("Failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
		}
	}
	account.ClearDomainEvents()
}

func toAccountInfo(account *identity.Account) *AccountInfo {
	return &AccountInfo{
		ID:        account.ID,
		Username:  account.Username,
		CreatedAt: account.CreatedAt,
	}
}
