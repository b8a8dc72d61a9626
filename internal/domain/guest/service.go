package guest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const publicIDAttempts = 5

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, ownerID int64, input CreateInput) (*Guest, error) {
	if ownerID <= 0 {
		return nil, ErrOwnerRequired
	}
	fullName, gender, err := validateProfile(input.FullName, input.Gender)
	if err != nil {
		return nil, err
	}

	publicID, err := s.generatePublicID(ctx)
	if err != nil {
		return nil, err
	}

	guest := Guest{
		PublicID: publicID,
		FullName: fullName,
		Gender:   gender,
		OwnerID:  &ownerID,
	}
	if err := s.repo.Create(ctx, &guest); err != nil {
		return nil, err
	}
	return &guest, nil
}

func (s *Service) GetPublic(ctx context.Context, publicID string) (*PublicView, error) {
	return s.repo.GetPublicView(ctx, strings.TrimSpace(publicID))
}

// List returns guests ordered by full name. A nil ownerID lists every guest.
func (s *Service) List(ctx context.Context, ownerID *int64) ([]Guest, error) {
	return s.repo.List(ctx, ListFilter{OwnerID: ownerID})
}

// Authorize resolves the guest and checks that accountID owns it.
func (s *Service) Authorize(ctx context.Context, accountID int64, publicID string) (*Guest, error) {
	guest, err := s.repo.GetByPublicID(ctx, strings.TrimSpace(publicID))
	if err != nil {
		return nil, err
	}
	if !guest.OwnedBy(accountID) {
		return nil, ErrNotOwner
	}
	return guest, nil
}

// Update replaces name and gender. When the status field was supplied the
// response is replaced too, restamped for an answer and cleared for pending.
func (s *Service) Update(ctx context.Context, publicID string, input UpdateInput) (*Guest, error) {
	fullName, gender, err := validateProfile(input.FullName, input.Gender)
	if err != nil {
		return nil, err
	}

	changes := Changes{FullName: fullName, Gender: gender}
	if input.Status.Set {
		response := Pending()
		if input.Status.Value != nil {
			if !input.Status.Value.Valid() {
				return nil, ErrInvalidResponseStatus
			}
			response = Answer(*input.Status.Value, s.now())
		}
		changes.Response = &response
	}

	publicID = strings.TrimSpace(publicID)
	if err := s.repo.Update(ctx, publicID, changes); err != nil {
		return nil, err
	}
	return s.repo.GetByPublicID(ctx, publicID)
}

func (s *Service) Delete(ctx context.Context, publicID string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(publicID))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGuestNotFound
	}
	return nil
}

func (s *Service) Accept(ctx context.Context, publicID string) (*Guest, error) {
	return s.respond(ctx, publicID, ResponseAccepted)
}

func (s *Service) Decline(ctx context.Context, publicID string) (*Guest, error) {
	return s.respond(ctx, publicID, ResponseDeclined)
}

// respond moves the guest to an answered state. Repeating the same answer
// only restamps the time; there is no way back to pending from here.
func (s *Service) respond(ctx context.Context, publicID string, status ResponseStatus) (*Guest, error) {
	publicID = strings.TrimSpace(publicID)
	if err := s.repo.SetResponse(ctx, publicID, Answer(status, s.now())); err != nil {
		return nil, err
	}
	return s.repo.GetByPublicID(ctx, publicID)
}

func (s *Service) generatePublicID(ctx context.Context) (string, error) {
	for i := 0; i < publicIDAttempts; i++ {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", fmt.Errorf("generate public id: %w", err)
		}
		taken, err := s.repo.IsPublicIDTaken(ctx, id.String())
		if err != nil {
			return "", err
		}
		if !taken {
			return id.String(), nil
		}
	}
	return "", ErrPublicIDGenerationFailed
}

func validateProfile(fullName, gender string) (string, Gender, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return "", "", ErrFullNameRequired
	}
	parsed, err := ParseGender(gender)
	if err != nil {
		return "", "", err
	}
	return fullName, parsed, nil
}
