package postgres

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accessTokenRepository implements the domain.AccessTokenRepository interface using GORM.
type accessTokenRepository struct {
	db *gorm.DB
}

// NewAccessTokenRepository is the constructor for accessTokenRepository.
func NewAccessTokenRepository(db *gorm.DB) repository.AccessTokenRepository {
	return &accessTokenRepository{db: db}
}

// Create persists a newly issued access token.
func (repo *accessTokenRepository) Create(ctx context.Context, token *entity.AccessToken) error {
	tokenM := fromAccessTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create access token")
	}

	return nil
}

// FindByID retrieves a token of tokenType by its identifier.
func (repo *accessTokenRepository) FindByID(ctx context.Context, tokenType string, id uuid.UUID) (*entity.AccessToken, error) {
	var tokenM model.AccessTokenModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND type = ?", id, tokenType).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccessTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find access token by id")
	}

	return toAccessTokenDomain(&tokenM), nil
}

// ListByTokenable returns the tokens of one owner, newest first.
func (repo *accessTokenRepository) ListByTokenable(ctx context.Context, tokenType string, tokenableID uuid.UUID) ([]*entity.AccessToken, error) {
	var tokenModels []*model.AccessTokenModel

	err := repo.db.WithContext(ctx).
		Where("tokenable_id = ? AND type = ?", tokenableID, tokenType).
		Order("created_at DESC").
		Find(&tokenModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access tokens")
	}

	tokens := make([]*entity.AccessToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toAccessTokenDomain(tokenM))
	}

	return tokens, nil
}

// TouchLastUsed records when a token last authenticated a request.
func (repo *accessTokenRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AccessTokenModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_used_at": usedAt,
			"updated_at":   usedAt,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update access token usage")
	}

	return nil
}

// Delete removes one token of an owner and reports how many rows went away.
func (repo *accessTokenRepository) Delete(ctx context.Context, tokenType string, tokenableID, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND tokenable_id = ? AND type = ?", id, tokenableID, tokenType).
		Delete(&model.AccessTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete access token")
	}

	return result.RowsAffected, nil
}

// DeleteExpired removes every token that expired at or before now. Tokens
// without an expiry are kept.
func (repo *accessTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&model.AccessTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired access tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toAccessTokenDomain(data *model.AccessTokenModel) *entity.AccessToken {
	if data == nil {
		return nil
	}

	return &entity.AccessToken{
		Identifier:  data.ID,
		TokenableID: data.TokenableID,
		Type:        data.Type,
		Name:        data.Name,
		Hash:        data.Hash,
		Abilities:   data.Abilities,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		ExpiresAt:   data.ExpiresAt,
		LastUsedAt:  data.LastUsedAt,
	}
}

func fromAccessTokenDomain(data *entity.AccessToken) *model.AccessTokenModel {
	if data == nil {
		return nil
	}

	return &model.AccessTokenModel{
		ID:          data.Identifier,
		TokenableID: data.TokenableID,
		Type:        data.Type,
		Name:        data.Name,
		Hash:        data.Hash,
		Abilities:   data.Abilities,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		ExpiresAt:   data.ExpiresAt,
		LastUsedAt:  data.LastUsedAt,
	}
}
