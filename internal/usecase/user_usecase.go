package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token has been revoked")
	// ErrInvalidInput marks request data the use cases refuse to store.
	ErrInvalidInput = errors.New("invalid input")
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
	denylist      contract.ITokenDenylist
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// SetTokenDenylist enables server-side logout.
func (uc *UserUsecase) SetTokenDenylist(denylist contract.ITokenDenylist) {
	uc.denylist = denylist
}

// Register creates the account and logs the new user in.
func (uc *UserUsecase) Register(ctx context.Context, user *entity.User, password string) (*entity.User, string, error) {
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	created, err := uc.CreateUser(ctx, user, password)
	if err != nil {
		return nil, "", err
	}
	token, _, err := uc.jwtService.GenerateAccessToken(created)
	if err != nil {
		uc.logger.Errorf("failed to issue access token for %s: %v", created.ID, err)
		return nil, "", fmt.Errorf("failed to issue access token")
	}
	return created, token, nil
}

// Login checks the password against the stored hash and issues an access token.
func (uc *UserUsecase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, _, err := uc.jwtService.GenerateAccessToken(user)
	if err != nil {
		uc.logger.Errorf("failed to issue access token for %s: %v", user.ID, err)
		return nil, "", fmt.Errorf("failed to issue access token")
	}
	return user, token, nil
}

// Logout revokes the token for the rest of its lifetime. Without a denylist
// tokens simply expire.
func (uc *UserUsecase) Logout(ctx context.Context, accessToken string) error {
	if uc.denylist == nil || accessToken == "" {
		return nil
	}
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		// an unusable token needs no revoking
		return nil
	}
	ttl := uc.jwtService.AccessTokenTTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	if err := uc.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// Authenticate returns the user id an access token was issued to.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (string, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return "", err
	}
	if uc.denylist != nil && claims.ID != "" {
		revoked, err := uc.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return "", fmt.Errorf("failed to check token: %w", err)
		}
		if revoked {
			return "", ErrTokenRevoked
		}
	}
	return claims.UserID, nil
}

// CreateUser stores a new user with a bcrypt hash of password.
func (uc *UserUsecase) CreateUser(ctx context.Context, user *entity.User, password string) (*entity.User, error) {
	if user.Username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if user.Email != "" {
		if err := uc.validator.ValidateEmail(user.Email); err != nil {
			return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
		}
	}

	existing, err := uc.userRepo.GetUserByUsername(ctx, user.Username)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, contract.ErrDuplicateUser
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	user.ID = uc.uuidGenerator.NewUUID()
	user.PasswordHash = hashedPassword
	user.Joined = time.Now()
	if user.AccountType == "" {
		user.AccountType = entity.DefaultAccountType()
	}
	if user.MaritalStatus == "" {
		user.MaritalStatus = entity.DefaultMaritalStatus()
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicateUser) {
			return nil, err
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

func (uc *UserUsecase) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies profile updates. A "password" entry is hashed before
// it is stored.
func (uc *UserUsecase) UpdateUser(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	delete(updates, "_id")
	delete(updates, "password_hash")
	if raw, ok := updates["password"]; ok {
		delete(updates, "password")
		password, _ := raw.(string)
		if password == "" {
			return nil, fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
		}
		hashed, err := uc.hasher.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("failed to process password")
		}
		updates["password_hash"] = hashed
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	return uc.userRepo.UpdateUser(ctx, userID, updates)
}

func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) (int64, error) {
	return uc.userRepo.DeleteUser(ctx, userID)
}

func (uc *UserUsecase) DeleteUsersByUsername(ctx context.Context, username string) (int64, error) {
	return uc.userRepo.DeleteUsersByUsername(ctx, username)
}

func (uc *UserUsecase) DeleteAllUsers(ctx context.Context) (int64, error) {
	return uc.userRepo.DeleteAllUsers(ctx)
}
