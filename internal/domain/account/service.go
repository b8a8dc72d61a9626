package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo   Repository
	scheme SecretScheme
}

func NewService(repo Repository, scheme SecretScheme) *Service {
	if scheme == "" {
		scheme = SchemeEncoded
	}
	return &Service{repo: repo, scheme: scheme}
}

// Authenticate resolves the account owning a decoded Basic credential.
// Unknown credentials yield ErrInvalidCredentials; any other error is a
// storage failure.
func (s *Service) Authenticate(ctx context.Context, credential string) (*Account, error) {
	if credential == "" {
		return nil, ErrInvalidCredentials
	}

	if s.scheme == SchemeBcrypt {
		return s.authenticateHashed(ctx, credential)
	}

	account, err := s.repo.FindBySecret(ctx, EncodeCredential(credential))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account by secret: %w", err)
	}
	return account, nil
}

func (s *Service) authenticateHashed(ctx context.Context, credential string) (*Account, error) {
	username, _, ok := strings.Cut(credential, ":")
	if !ok || username == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Secret), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateCouple(ctx context.Context, id int64, couple CoupleInfo) (*Account, error) {
	couple.HusbandsName = strings.TrimSpace(couple.HusbandsName)
	couple.WifesName = strings.TrimSpace(couple.WifesName)
	if couple.HusbandsName == "" || couple.WifesName == "" {
		return nil, ErrCoupleNamesRequired
	}

	if err := s.repo.UpdateCouple(ctx, id, couple); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateEvent(ctx context.Context, id int64, event EventInfo) (*Account, error) {
	event.Date = strings.TrimSpace(event.Date)
	event.Time = strings.TrimSpace(event.Time)
	event.Address = strings.TrimSpace(event.Address)

	if err := s.repo.UpdateEvent(ctx, id, event); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Provision creates an account whose secret is sealed with the active scheme.
func (s *Service) Provision(ctx context.Context, input ProvisionInput) (*Account, error) {
	input.Phone = strings.TrimSpace(input.Phone)
	input.Username = strings.TrimSpace(input.Username)
	if input.Phone == "" || input.Username == "" || input.Password == "" {
		return nil, ErrProvisionInvalid
	}

	secret, err := s.seal(input.Username + ":" + input.Password)
	if err != nil {
		return nil, err
	}

	account := Account{
		Phone:        input.Phone,
		Username:     input.Username,
		Secret:       secret,
		HusbandsName: strings.TrimSpace(input.Couple.HusbandsName),
		WifesName:    strings.TrimSpace(input.Couple.WifesName),
		Date:         strings.TrimSpace(input.Event.Date),
		Time:         strings.TrimSpace(input.Event.Time),
		Address:      strings.TrimSpace(input.Event.Address),
	}
	if err := s.repo.Create(ctx, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Service) seal(credential string) (string, error) {
	if s.scheme != SchemeBcrypt {
		return EncodeCredential(credential), nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash credential: %w", err)
	}
	return string(hash), nil
}
