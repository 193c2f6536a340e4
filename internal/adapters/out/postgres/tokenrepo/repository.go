package tokenrepo

import (
	"context"
	"errors"

	"dotrack/internal/core/domain/model/user"
	"dotrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormResetTokenRepository implements ResetTokenRepository using GORM.
type GormResetTokenRepository struct {
	db *gorm.DB
}

// NewGormResetTokenRepository creates a new GORM reset token repository.
func NewGormResetTokenRepository(db *gorm.DB) *GormResetTokenRepository {
	return &GormResetTokenRepository{db: db}
}

// Add saves a new reset token to the database.
func (r *GormResetTokenRepository) Add(ctx context.Context, token *user.ResetToken) error {
	if err := token.Validate(); err != nil {
		return err
	}

	dto := fromDomain(token)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnused retrieves an unredeemed token by its opaque value.
func (r *GormResetTokenRepository) GetUnused(ctx context.Context, token string) (*user.ResetToken, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	var dto ResetTokenDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "token = ? AND NOT is_used", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("resetToken", token)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing token to the database. The only mutation is
// redemption, but the write selects is_used explicitly so a future reset to
// false would not be skipped as a zero value.
func (r *GormResetTokenRepository) Update(ctx context.Context, token *user.ResetToken) error {
	if err := token.Validate(); err != nil {
		return err
	}

	dto := fromDomain(token)
	result := r.db.WithContext(ctx).Model(&ResetTokenDTO{}).
		Where("id = ?", dto.ID).
		Select("is_used").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("resetToken", token.ID().String())
	}

	return nil
}

// DeleteExpired removes all tokens whose deadline has passed, judged by the
// database clock. Returns the number of tokens removed.
func (r *GormResetTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= NOW()").
		Delete(&ResetTokenDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
