package guest

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	domain "wedding-rsvp-go/internal/domain/guest"
	"wedding-rsvp-go/internal/repository/gormstore"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, guest *domain.Guest) (err error) {
	ctx, span := gormstore.StartSpan(ctx, "guest.Create")
	defer func() { gormstore.EndSpan(span, err, domain.ErrDuplicateGuest) }()

	if err := r.db.WithContext(ctx).Create(guest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateGuest
		}
		return err
	}
	return nil
}

func (r *GormRepository) GetByPublicID(ctx context.Context, publicID string) (guest *domain.Guest, err error) {
	ctx, span := gormstore.StartSpan(ctx, "guest.GetByPublicID", attribute.String("guest.public_id", publicID))
	defer func() { gormstore.EndSpan(span, err, domain.ErrGuestNotFound) }()

	var found domain.Guest
	if err := r.db.WithContext(ctx).Where("uuid = ?", publicID).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *GormRepository) GetPublicView(ctx context.Context, publicID string) (view *domain.PublicView, err error) {
	ctx, span := gormstore.StartSpan(ctx, "guest.GetPublicView", attribute.String("guest.public_id", publicID))
	defer func() { gormstore.EndSpan(span, err, domain.ErrGuestNotFound) }()

	type viewRow struct {
		ID           int64                  `gorm:"column:id"`
		PublicID     string                 `gorm:"column:uuid"`
		FullName     string                 `gorm:"column:full_name"`
		Gender       domain.Gender          `gorm:"column:gender"`
		RespStatus   *domain.ResponseStatus `gorm:"column:resp_status"`
		RespDate     *time.Time             `gorm:"column:resp_date"`
		OwnerID      *int64                 `gorm:"column:user_id"`
		HusbandsName *string                `gorm:"column:husbands_name"`
		WifesName    *string                `gorm:"column:wifes_name"`
		EventDate    *string                `gorm:"column:event_date"`
		EventTime    *string                `gorm:"column:event_time"`
		EventAddress *string                `gorm:"column:event_address"`
	}

	var rows []viewRow
	if err := r.db.WithContext(ctx).
		Table("guests").
		Select("guests.id, guests.uuid, guests.full_name, guests.gender, guests.resp_status, guests.resp_date, guests.user_id, " +
			"accounts.husbands_name, accounts.wifes_name, accounts.event_date, accounts.event_time, accounts.event_address").
		Joins("left join accounts on accounts.id = guests.user_id").
		Where("guests.uuid = ?", publicID).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrGuestNotFound
	}

	row := rows[0]
	result := domain.PublicView{
		Guest: domain.Guest{
			ID:         row.ID,
			PublicID:   row.PublicID,
			FullName:   row.FullName,
			Gender:     row.Gender,
			RespStatus: row.RespStatus,
			RespDate:   row.RespDate,
			OwnerID:    row.OwnerID,
		},
	}
	if row.OwnerID != nil && row.HusbandsName != nil {
		result.Owner = &domain.Owner{
			HusbandsName: deref(row.HusbandsName),
			WifesName:    deref(row.WifesName),
			Date:         deref(row.EventDate),
			Time:         deref(row.EventTime),
			Address:      deref(row.EventAddress),
		}
	}
	return &result, nil
}

func (r *GormRepository) List(ctx context.Context, filter domain.ListFilter) (guests []domain.Guest, err error) {
	ctx, span := gormstore.StartSpan(ctx, "guest.List", attribute.Bool("guest.scoped", filter.OwnerID != nil))
	defer func() { gormstore.EndSpan(span, err) }()

	query := r.db.WithContext(ctx).Model(&domain.Guest{})
	if filter.OwnerID != nil {
		query = query.Where("user_id = ?", *filter.OwnerID)
	}

	result := make([]domain.Guest, 0)
	if err := query.Order("full_name asc").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (r *GormRepository) Update(ctx context.Context, publicID string, changes domain.Changes) (err error) {
	ctx, span := gormstore.StartSpan(ctx, "guest.Update", attribute.String("guest.public_id", publicID))
	defer func() { gormstore.EndSpan(span, err, domain.ErrGuestNotFound, domain.ErrDuplicateGuest) }()

	values := map[string]interface{}{
		"full_name": changes.FullName,
		"gender":    changes.Gender,
	}
	if changes.Response != nil {
		values["resp_status"] = changes.Response.Status
		values["resp_date"] = changes.Response.At
	}
	return r.updateByPublicID(ctx, publicID, values)
}

func (r *GormRepository) SetResponse(ctx context.Context, publicID string, response domain.Response) (err error) {
	ctx, span := gormstore.StartSpan(ctx, "guest.SetResponse", attribute.String("guest.public_id", publicID))
	defer func() { gormstore.EndSpan(span, err, domain.ErrGuestNotFound) }()

	return r.updateByPublicID(ctx, publicID, map[string]interface{}{
		"resp_status": response.Status,
		"resp_date":   response.At,
	})
}

func (r *GormRepository) Delete(ctx context.Context, publicID string) (deleted bool, err error) {
	ctx, span := gormstore.StartSpan(ctx, "guest.Delete", attribute.String("guest.public_id", publicID))
	defer func() { gormstore.EndSpan(span, err) }()

	result := r.db.WithContext(ctx).Where("uuid = ?", publicID).Delete(&domain.Guest{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormRepository) IsPublicIDTaken(ctx context.Context, publicID string) (taken bool, err error) {
	ctx, span := gormstore.StartSpan(ctx, "guest.IsPublicIDTaken")
	defer func() { gormstore.EndSpan(span, err) }()

	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Guest{}).Where("uuid = ?", publicID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepository) updateByPublicID(ctx context.Context, publicID string, values map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&domain.Guest{}).Where("uuid = ?", publicID).Updates(values)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateGuest
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
