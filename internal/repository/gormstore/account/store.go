package account

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	domain "wedding-rsvp-go/internal/domain/account"
	"wedding-rsvp-go/internal/repository/gormstore"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (account *domain.Account, err error) {
	ctx, span := gormstore.StartSpan(ctx, "account.GetByID", attribute.Int64("account.id", id))
	defer func() { gormstore.EndSpan(span, err, domain.ErrAccountNotFound) }()

	return r.first(ctx, "id = ?", id)
}

func (r *GormRepository) FindBySecret(ctx context.Context, secret string) (account *domain.Account, err error) {
	ctx, span := gormstore.StartSpan(ctx, "account.FindBySecret")
	defer func() { gormstore.EndSpan(span, err, domain.ErrAccountNotFound) }()

	return r.first(ctx, "auth = ?", secret)
}

func (r *GormRepository) FindByUsername(ctx context.Context, username string) (account *domain.Account, err error) {
	ctx, span := gormstore.StartSpan(ctx, "account.FindByUsername")
	defer func() { gormstore.EndSpan(span, err, domain.ErrAccountNotFound) }()

	return r.first(ctx, "username = ?", username)
}

func (r *GormRepository) Create(ctx context.Context, account *domain.Account) (err error) {
	ctx, span := gormstore.StartSpan(ctx, "account.Create")
	defer func() { gormstore.EndSpan(span, err, domain.ErrDuplicateAccount) }()

	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateAccount
		}
		return err
	}
	return nil
}

func (r *GormRepository) UpdateCouple(ctx context.Context, id int64, couple domain.CoupleInfo) (err error) {
	ctx, span := gormstore.StartSpan(ctx, "account.UpdateCouple", attribute.Int64("account.id", id))
	defer func() { gormstore.EndSpan(span, err, domain.ErrAccountNotFound) }()

	return r.update(ctx, id, map[string]interface{}{
		"husbands_name": couple.HusbandsName,
		"wifes_name":    couple.WifesName,
	})
}

func (r *GormRepository) UpdateEvent(ctx context.Context, id int64, event domain.EventInfo) (err error) {
	ctx, span := gormstore.StartSpan(ctx, "account.UpdateEvent", attribute.Int64("account.id", id))
	defer func() { gormstore.EndSpan(span, err, domain.ErrAccountNotFound) }()

	return r.update(ctx, id, map[string]interface{}{
		"event_date":    event.Date,
		"event_time":    event.Time,
		"event_address": event.Address,
	})
}

func (r *GormRepository) first(ctx context.Context, query string, arg interface{}) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).Where(query, arg).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *GormRepository) update(ctx context.Context, id int64, values map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&domain.Account{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
