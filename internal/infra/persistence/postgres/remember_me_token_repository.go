package postgres

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// rememberMeTokenRepository implements the domain.RememberMeTokenRepository interface using GORM.
type rememberMeTokenRepository struct {
	db *gorm.DB
}

// NewRememberMeTokenRepository is the constructor for rememberMeTokenRepository.
func NewRememberMeTokenRepository(db *gorm.DB) repository.RememberMeTokenRepository {
	return &rememberMeTokenRepository{db: db}
}

// Create persists a newly issued token.
func (repo *rememberMeTokenRepository) Create(ctx context.Context, token *entity.RememberMeToken) error {
	tokenM := fromRememberMeTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create remember me token")
	}

	return nil
}

// FindBySeries retrieves a token by its series.
func (repo *rememberMeTokenRepository) FindBySeries(ctx context.Context, series string) (*entity.RememberMeToken, error) {
	var tokenM model.RememberMeTokenModel

	err := repo.db.WithContext(ctx).
		Where("series = ?", series).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRememberMeTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find remember me token by series")
	}

	return toRememberMeTokenDomain(&tokenM), nil
}

// UpdateIfUnchanged writes the rotated secret only if the row still carries
// previousUpdatedAt. It reports false when another writer got there first.
func (repo *rememberMeTokenRepository) UpdateIfUnchanged(
	ctx context.Context,
	token *entity.RememberMeToken,
	previousUpdatedAt time.Time,
) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RememberMeTokenModel{}).
		Where("series = ? AND updated_at = ?", token.Series, previousUpdatedAt).
		Updates(map[string]any{
			"hash":       token.Hash,
			"updated_at": token.UpdatedAt,
			"expires_at": token.ExpiresAt,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update remember me token")
	}

	return result.RowsAffected == 1, nil
}

// DeleteBySeries removes a token. Deleting an unknown series is not an error.
func (repo *rememberMeTokenRepository) DeleteBySeries(ctx context.Context, series string) error {
	err := repo.db.WithContext(ctx).
		Where("series = ?", series).
		Delete(&model.RememberMeTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete remember me token")
	}

	return nil
}

// DeleteExpired removes every token that expired at or before now.
func (repo *rememberMeTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.RememberMeTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired remember me tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toRememberMeTokenDomain(data *model.RememberMeTokenModel) *entity.RememberMeToken {
	if data == nil {
		return nil
	}

	return &entity.RememberMeToken{
		Series:    data.Series,
		UserID:    data.UserID,
		Guard:     data.Guard,
		Hash:      data.Hash,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

func fromRememberMeTokenDomain(data *entity.RememberMeToken) *model.RememberMeTokenModel {
	if data == nil {
		return nil
	}

	return &model.RememberMeTokenModel{
		Series:    data.Series,
		UserID:    data.UserID,
		Guard:     data.Guard,
		Hash:      data.Hash,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
