package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

// TuitUsecase manages tuits. It is also the Post Store the reaction toggle
// reads from, through the repository it wraps.
type TuitUsecase struct {
	tuitRepo      contract.ITuitRepository
	userRepo      contract.IUserRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	tuitCache     contract.ITuitCache
	cacheObserver CacheObserver
}

var _ usecasecontract.ITuitUseCase = (*TuitUsecase)(nil)

func NewTuitUsecase(tuitRepo contract.ITuitRepository, userRepo contract.IUserRepository, uuidGenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *TuitUsecase {
	return &TuitUsecase{
		tuitRepo:      tuitRepo,
		userRepo:      userRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// SetTuitCache enables read-through caching of single tuits.
func (uc *TuitUsecase) SetTuitCache(cache contract.ITuitCache, observer CacheObserver) {
	uc.tuitCache = cache
	uc.cacheObserver = observer
}

// CreateTuit stores a new tuit authored by userID with zeroed stats.
func (uc *TuitUsecase) CreateTuit(ctx context.Context, userID string, tuit *entity.Tuit) (*entity.Tuit, error) {
	if userID == "" {
		return nil, ErrUnresolvedIdentity
	}
	if strings.TrimSpace(tuit.Tuit) == "" {
		return nil, fmt.Errorf("%w: tuit content is required", ErrInvalidInput)
	}
	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	tuit.ID = uc.uuidGenerator.NewUUID()
	tuit.PostedByID = userID
	tuit.PostedBy = nil
	tuit.PostedOn = time.Now()
	tuit.Stats = entity.Stats{}

	if err := uc.tuitRepo.CreateTuit(ctx, tuit); err != nil {
		uc.logger.Errorf("failed to create tuit for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to create tuit: %w", err)
	}
	return tuit, nil
}

// GetTuitByID reads through the cache when one is configured.
func (uc *TuitUsecase) GetTuitByID(ctx context.Context, tuitID string) (*entity.Tuit, error) {
	if uc.tuitCache != nil {
		t0 := time.Now()
		cached, found, err := uc.tuitCache.GetTuit(ctx, tuitID)
		elapsed := time.Since(t0)
		switch {
		case err == nil && found && cached != nil:
			if uc.cacheObserver != nil {
				uc.cacheObserver.ObserveCacheHit(elapsed)
			}
			return cached, nil
		case err == nil:
			if uc.cacheObserver != nil {
				uc.cacheObserver.ObserveCacheMiss(elapsed)
			}
		default:
			uc.logger.Warnf("cache error: tuit %s err=%v took=%s", tuitID, err, elapsed)
		}
	}

	tuit, err := uc.tuitRepo.GetTuitByID(ctx, tuitID)
	if err != nil {
		return nil, err
	}

	if uc.tuitCache != nil {
		if err := uc.tuitCache.SetTuit(ctx, tuit); err != nil {
			uc.logger.Warnf("failed to cache tuit %s: %v", tuitID, err)
		}
	}
	return tuit, nil
}

func (uc *TuitUsecase) GetTuits(ctx context.Context) ([]*entity.Tuit, error) {
	tuits, err := uc.tuitRepo.GetTuits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tuits: %w", err)
	}
	return tuits, nil
}

func (uc *TuitUsecase) GetTuitsByUser(ctx context.Context, userID string) ([]*entity.Tuit, error) {
	tuits, err := uc.tuitRepo.GetTuitsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tuits of user %s: %w", userID, err)
	}
	return tuits, nil
}

// UpdateTuit applies content updates. Stats and authorship are owned elsewhere
// and are stripped from updates.
func (uc *TuitUsecase) UpdateTuit(ctx context.Context, tuitID string, updates map[string]interface{}) error {
	delete(updates, "stats")
	delete(updates, "postedBy")
	delete(updates, "_id")
	if len(updates) == 0 {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if err := uc.tuitRepo.UpdateTuit(ctx, tuitID, updates); err != nil {
		return err
	}
	uc.invalidate(ctx, tuitID)
	return nil
}

func (uc *TuitUsecase) DeleteTuit(ctx context.Context, tuitID string) (int64, error) {
	deleted, err := uc.tuitRepo.DeleteTuit(ctx, tuitID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tuit %s: %w", tuitID, err)
	}
	uc.invalidate(ctx, tuitID)
	return deleted, nil
}

func (uc *TuitUsecase) invalidate(ctx context.Context, tuitID string) {
	if uc.tuitCache == nil {
		return
	}
	if err := uc.tuitCache.InvalidateTuit(ctx, tuitID); err != nil {
		uc.logger.Warnf("failed to invalidate cached tuit %s: %v", tuitID, err)
	}
}
