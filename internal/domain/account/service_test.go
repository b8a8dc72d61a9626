package account

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

type fakeAccountRepo struct {
	accounts map[int64]*Account
	nextID   int64
	failWith error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[int64]*Account), nextID: 1}
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id int64) (*Account, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	account, ok := r.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) FindBySecret(ctx context.Context, secret string) (*Account, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, account := range r.accounts {
		if account.Secret == secret {
			copied := *account
			return &copied, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByUsername(ctx context.Context, username string) (*Account, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, account := range r.accounts {
		if account.Username == username {
			copied := *account
			return &copied, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *Account) error {
	for _, existing := range r.accounts {
		if existing.Phone == account.Phone || existing.Username == account.Username {
			return ErrDuplicateAccount
		}
	}
	account.ID = r.nextID
	r.nextID++
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) UpdateCouple(ctx context.Context, id int64, couple CoupleInfo) error {
	account, ok := r.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	account.HusbandsName = couple.HusbandsName
	account.WifesName = couple.WifesName
	return nil
}

func (r *fakeAccountRepo) UpdateEvent(ctx context.Context, id int64, event EventInfo) error {
	account, ok := r.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	account.Date = event.Date
	account.Time = event.Time
	account.Address = event.Address
	return nil
}

func TestAuthenticateEncodedScheme(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.accounts[1] = &Account{ID: 1, Phone: "+380991234567", Username: "john_doe", Secret: "am9objpkb2UxMjM="}
	svc := NewService(repo, SchemeEncoded)

	account, err := svc.Authenticate(context.Background(), "john:doe123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if account.ID != 1 {
		t.Fatalf("expected account 1, got %d", account.ID)
	}

	_, err = svc.Authenticate(context.Background(), "john:wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateEmptyCredential(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), SchemeEncoded)
	_, err := svc.Authenticate(context.Background(), "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateStorageFailureIsNotInvalidCredentials(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.failWith = errors.New("disk on fire")
	svc := NewService(repo, SchemeEncoded)

	_, err := svc.Authenticate(context.Background(), "john:doe123")
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("storage failure must not look like invalid credentials: %v", err)
	}
}

func TestProvisionAndAuthenticateBcrypt(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, SchemeBcrypt)

	created, err := svc.Provision(context.Background(), ProvisionInput{
		Phone:    "+380000000001",
		Username: "alice",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if created.Secret == EncodeCredential("alice:s3cret") {
		t.Fatalf("bcrypt scheme must not store the encoded credential")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Secret), []byte("alice:s3cret")); err != nil {
		t.Fatalf("expected bcrypt hash of credential: %v", err)
	}

	account, err := svc.Authenticate(context.Background(), "alice:s3cret")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if account.ID != created.ID {
		t.Fatalf("expected account %d, got %d", created.ID, account.ID)
	}

	for _, credential := range []string{"alice:nope", "bob:s3cret", "no-colon"} {
		if _, err := svc.Authenticate(context.Background(), credential); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("credential %q: expected ErrInvalidCredentials, got %v", credential, err)
		}
	}
}

func TestProvisionEncodedDefaultsEmptyStrings(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, "")

	created, err := svc.Provision(context.Background(), ProvisionInput{
		Phone:    "+380000000001",
		Username: "alice",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if created.Secret != EncodeCredential("alice:pw") {
		t.Fatalf("unexpected secret %q", created.Secret)
	}
	if created.HusbandsName != "" || created.Address != "" {
		t.Fatalf("expected empty defaults, got %+v", created)
	}

	_, err = svc.Provision(context.Background(), ProvisionInput{Phone: "+380000000001", Username: "alice2", Password: "pw"})
	if !errors.Is(err, ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}

	_, err = svc.Provision(context.Background(), ProvisionInput{Phone: "+1", Username: " "})
	if !errors.Is(err, ErrProvisionInvalid) {
		t.Fatalf("expected ErrProvisionInvalid, got %v", err)
	}
}

func TestUpdateCoupleRequiresBothNames(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.accounts[1] = &Account{ID: 1, Username: "alice"}
	svc := NewService(repo, SchemeEncoded)

	_, err := svc.UpdateCouple(context.Background(), 1, CoupleInfo{HusbandsName: "John"})
	if !errors.Is(err, ErrCoupleNamesRequired) {
		t.Fatalf("expected ErrCoupleNamesRequired, got %v", err)
	}
	if repo.accounts[1].HusbandsName != "" {
		t.Fatalf("expected no partial update")
	}

	updated, err := svc.UpdateCouple(context.Background(), 1, CoupleInfo{HusbandsName: " John ", WifesName: "Jane"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.HusbandsName != "John" || updated.WifesName != "Jane" {
		t.Fatalf("unexpected couple %+v", updated)
	}
}

func TestUpdateCoupleAccountMissing(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), SchemeEncoded)
	_, err := svc.UpdateCouple(context.Background(), 42, CoupleInfo{HusbandsName: "a", WifesName: "b"})
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestUpdateEventAllowsEmptyFields(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.accounts[1] = &Account{ID: 1, Username: "alice", Address: "old"}
	svc := NewService(repo, SchemeEncoded)

	updated, err := svc.UpdateEvent(context.Background(), 1, EventInfo{Date: "2024-06-15", Time: "15:00"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Date != "2024-06-15" || updated.Time != "15:00" || updated.Address != "" {
		t.Fatalf("unexpected event info %+v", updated)
	}
}
