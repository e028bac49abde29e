package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an account that can log in with email and password.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting user registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registeredUser *entity.User

	// Execute the existence check and the insert within a single database transaction.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject duplicate emails
		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Create the user
		newUser := &entity.User{
			ID:           uuid.New(),
			Name:         strings.TrimSpace(input.Name),
			Email:        email,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
			}

			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute user registration transaction", slog.Any("error", err), slog.String("email", email))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}
	srv.log(ctx).Debug("User registered successfully", slog.Any("user_id", registeredUser.ID))

	return registeredUser, nil
}
