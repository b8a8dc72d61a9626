package account

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Account, error)
	FindBySecret(ctx context.Context, secret string) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	UpdateCouple(ctx context.Context, id int64, couple CoupleInfo) error
	UpdateEvent(ctx context.Context, id int64, event EventInfo) error
}
