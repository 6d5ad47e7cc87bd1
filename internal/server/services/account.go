// Package services contains the server-side business logic. This file
// implements AccountService, the account lifecycle orchestrator: creation,
// passcode issuance, activation, and credential verification.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/microfarm/accounts/internal/common"
	"github.com/microfarm/accounts/internal/logging"
	"github.com/microfarm/accounts/internal/passcode"
	"github.com/microfarm/accounts/internal/password"
	"github.com/microfarm/accounts/internal/server/models"
	"github.com/microfarm/accounts/internal/server/repositories/accounts"
	"github.com/microfarm/accounts/internal/shortid"
)

// CreateAccountParams is the validated input for Create. Validation happens
// at the RPC boundary; hashing happens here, as an explicit step.
type CreateAccountParams struct {
	Email    string
	Password string
	Name     string
}

// AccountService drives the account state machine. The only transition it
// performs is pending -> active; disabled is written elsewhere and read here
// as "not active".
type AccountService struct {
	repo   accounts.Repository
	issuer *passcode.Issuer
	logger logging.Logger
	now    func() time.Time
}

func NewAccountService(repo accounts.Repository, issuer *passcode.Issuer, logger logging.Logger) *AccountService {
	return &AccountService{
		repo:   repo,
		issuer: issuer,
		logger: logger.With("module", "account_service"),
		now:    time.Now,
	}
}

// Create hashes the password, stores a pending record with a fresh secret,
// and returns the current-window passcode. The passcode is never persisted;
// it is recomputed on demand. A duplicate email surfaces as
// *common.AlreadyExistsError from the repository.
func (s *AccountService) Create(ctx context.Context, params CreateAccountParams) (string, error) {

	hash, err := password.Hash(params.Password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	id, err := shortid.New()
	if err != nil {
		return "", fmt.Errorf("error generating account id: %w", err)
	}

	account := &models.Account{
		ID:           id,
		Email:        params.Email,
		Name:         params.Name,
		Secret:       common.GenerateRandByteArray(models.SecretSize),
		PasswordHash: hash,
		Status:       models.StatusPending,
		CreatedAt:    s.now().UTC(),
	}

	if _, err := s.repo.Create(ctx, account); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "account created", "id", account.ID)
	return s.issuer.Issue(account.Secret, account.Email), nil
}

// RequestToken recomputes the current-window passcode for the account,
// regardless of its status. It does not mutate state, so an already-active
// or disabled account can still fetch a token; the gating happens in
// VerifyAccount.
func (s *AccountService) RequestToken(ctx context.Context, email string) (string, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return s.issuer.Issue(account.Secret, account.Email), nil
}

// VerifyAccount activates a pending account with a valid passcode.
//
// The lookup is scoped to status = pending, so "no such account" and
// "not pending anymore" both report ErrorCannotActivate; the path does not
// leak account existence. A wrong passcode returns ErrorInvalidToken with no
// state change, leaving the record retryable.
func (s *AccountService) VerifyAccount(ctx context.Context, email, otp string) (*models.AccountView, error) {
	account, err := s.repo.GetByEmailAndStatus(ctx, email, models.StatusPending)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorCannotActivate
		}
		return nil, err
	}

	if !s.issuer.Verify(account.Secret, account.Email, otp) {
		return nil, common.ErrorInvalidToken
	}

	flipped, err := s.repo.Activate(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if !flipped {
		// Lost a race with a concurrent activation.
		return nil, common.ErrorCannotActivate
	}

	s.logger.Info(ctx, "account activated", "id", account.ID)

	account.Status = models.StatusActive
	return account.View(), nil
}

// VerifyCredentials authenticates an active account.
//
// The lookup is scoped to status = active, so a pending or disabled account
// reports the same ErrorNotFound as a truly absent email.
func (s *AccountService) VerifyCredentials(ctx context.Context, email, pw string) (*models.AccountView, error) {
	account, err := s.repo.GetByEmailAndStatus(ctx, email, models.StatusActive)
	if err != nil {
		return nil, err
	}

	if !password.Verify(account.PasswordHash, pw) {
		return nil, common.ErrorCredentialsFailed
	}

	return account.View(), nil
}

// Get returns the public view of the account, any status.
func (s *AccountService) Get(ctx context.Context, email string) (*models.AccountView, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return account.View(), nil
}
