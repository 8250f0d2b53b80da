package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

var (
	// ErrUnresolvedIdentity is returned when no concrete user id reached the use case.
	ErrUnresolvedIdentity = errors.New("unresolved identity")
	// ErrOperationFailed wraps any store failure during a toggle.
	ErrOperationFailed     = errors.New("reaction toggle failed")
	ErrInvalidReactionKind = errors.New("invalid reaction kind")
)

// Toggle transitions reported to the ToggleObserver.
const (
	TransitionOn     = "on"
	TransitionOff    = "off"
	TransitionSwitch = "switch"
)

// ReactionUsecase coordinates likes and dislikes on tuits.
type ReactionUsecase struct {
	stores   map[entity.ReactionKind]contract.IReactionRepository
	tuitRepo contract.ITuitRepository
	logger   usecasecontract.IAppLogger

	tuitCache contract.ITuitCache
	locker    contract.IToggleLocker
	events    contract.IReactionEventPublisher
	observer  ToggleObserver
}

var _ usecasecontract.IReactionUseCase = (*ReactionUsecase)(nil)

// NewReactionUsecase creates and returns a new ReactionUsecase instance.
func NewReactionUsecase(likeRepo, dislikeRepo contract.IReactionRepository, tuitRepo contract.ITuitRepository, logger usecasecontract.IAppLogger) *ReactionUsecase {
	return &ReactionUsecase{
		stores: map[entity.ReactionKind]contract.IReactionRepository{
			entity.ReactionLike:    likeRepo,
			entity.ReactionDislike: dislikeRepo,
		},
		tuitRepo: tuitRepo,
		logger:   logger,
	}
}

// SetTuitCache makes toggles invalidate cached tuits after writing stats.
func (u *ReactionUsecase) SetTuitCache(cache contract.ITuitCache) { u.tuitCache = cache }

// SetLocker serializes toggles per (user, tuit).
func (u *ReactionUsecase) SetLocker(locker contract.IToggleLocker) { u.locker = locker }

func (u *ReactionUsecase) SetEventPublisher(events contract.IReactionEventPublisher) { u.events = events }

func (u *ReactionUsecase) SetObserver(observer ToggleObserver) { u.observer = observer }

func (u *ReactionUsecase) store(kind entity.ReactionKind) (contract.IReactionRepository, error) {
	repo, ok := u.stores[kind]
	if !ok || repo == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReactionKind, kind)
	}
	return repo, nil
}

// Toggle turns the user's reaction of the given kind off if present, or on
// if absent, clearing the opposite kind in the latter case. The counters of
// the kinds that change are rewritten from the counts read before mutating;
// the stored counter of an untouched kind is kept as is. The steps are
// not atomic; concurrent toggles on the same pair can leave the counters
// stale unless a locker is configured.
//
// Every failure other than a missing tuit is reported as ErrOperationFailed.
func (u *ReactionUsecase) Toggle(ctx context.Context, kind entity.ReactionKind, userID, tuitID string) (*entity.Stats, error) {
	if userID == "" {
		return nil, ErrUnresolvedIdentity
	}
	this, err := u.store(kind)
	if err != nil {
		return nil, err
	}
	other, err := u.store(kind.Opposite())
	if err != nil {
		return nil, err
	}

	if u.locker != nil {
		release, err := u.locker.Acquire(ctx, userID, tuitID)
		if err != nil {
			return nil, u.toggleFailed(kind, userID, tuitID, fmt.Errorf("failed to acquire toggle lock: %w", err))
		}
		defer release()
	}

	stats, transition, err := u.toggle(ctx, this, other, userID, tuitID)
	if err != nil {
		return nil, u.toggleFailed(kind, userID, tuitID, err)
	}

	if u.tuitCache != nil {
		if err := u.tuitCache.InvalidateTuit(ctx, tuitID); err != nil {
			u.logger.Warnf("failed to invalidate cached tuit %s: %v", tuitID, err)
		}
	}
	if u.events != nil {
		event := contract.ReactionToggled{
			UserID:   userID,
			TuitID:   tuitID,
			Kind:     kind,
			Active:   transition != TransitionOff,
			Likes:    stats.Likes,
			Dislikes: stats.Dislikes,
		}
		if err := u.events.PublishReactionToggled(ctx, event); err != nil {
			u.logger.Warnf("failed to publish %s toggle for tuit %s: %v", kind, tuitID, err)
		}
	}
	if u.observer != nil {
		u.observer.ObserveToggle(kind, transition)
	}
	u.logger.Debugf("user %s toggled %s %s on tuit %s", userID, kind, transition, tuitID)
	return stats, nil
}

func (u *ReactionUsecase) toggle(ctx context.Context, this, other contract.IReactionRepository, userID, tuitID string) (*entity.Stats, string, error) {
	current, err := this.Find(ctx, userID, tuitID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to retrieve existing %s: %w", this.Kind(), err)
	}
	opposite, err := other.Find(ctx, userID, tuitID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to retrieve existing %s: %w", other.Kind(), err)
	}
	thisCount, err := this.Count(ctx, tuitID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to count %ss for tuit %s: %w", this.Kind(), tuitID, err)
	}
	otherCount, err := other.Count(ctx, tuitID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to count %ss for tuit %s: %w", other.Kind(), tuitID, err)
	}
	tuit, err := u.tuitRepo.GetTuitByID(ctx, tuitID)
	if err != nil {
		return nil, "", err
	}

	stats := tuit.Stats
	var transition string
	if current != nil {
		// Already reacted with this kind: turn it off and leave the other kind alone.
		if _, err := this.Delete(ctx, userID, tuitID); err != nil {
			return nil, "", fmt.Errorf("failed to delete %s: %w", this.Kind(), err)
		}
		stats.Set(this.Kind(), decrement(thisCount), false)
		stats.SetByCaller(other.Kind(), opposite != nil)
		transition = TransitionOff
	} else {
		stats.SetByCaller(other.Kind(), false)
		transition = TransitionOn
		if opposite != nil {
			if _, err := other.Delete(ctx, userID, tuitID); err != nil {
				return nil, "", fmt.Errorf("failed to delete %s: %w", other.Kind(), err)
			}
			stats.Set(other.Kind(), decrement(otherCount), false)
			transition = TransitionSwitch
		}
		if _, err := this.Create(ctx, userID, tuitID); err != nil {
			return nil, "", fmt.Errorf("failed to create %s: %w", this.Kind(), err)
		}
		stats.Set(this.Kind(), int(thisCount)+1, true)
	}

	if err := u.tuitRepo.UpdateStats(ctx, tuitID, stats); err != nil {
		return nil, "", fmt.Errorf("failed to update stats of tuit %s: %w", tuitID, err)
	}
	return &stats, transition, nil
}

func (u *ReactionUsecase) toggleFailed(kind entity.ReactionKind, userID, tuitID string, err error) error {
	if u.observer != nil {
		u.observer.ObserveToggleFailure(kind)
	}
	u.logger.Warnf("toggle %s by user %s on tuit %s failed: %v", kind, userID, tuitID, err)
	if errors.Is(err, contract.ErrTuitNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrOperationFailed, err)
}

func decrement(n int64) int {
	return max(int(n)-1, 0)
}

// React records a reaction without looking at existing ones or at the tuit
// stats. Duplicates are only rejected when the store enforces uniqueness.
func (u *ReactionUsecase) React(ctx context.Context, kind entity.ReactionKind, userID, tuitID string) (*entity.Reaction, error) {
	repo, err := u.store(kind)
	if err != nil {
		return nil, err
	}
	reaction, err := repo.Create(ctx, userID, tuitID)
	if err != nil {
		if errors.Is(err, contract.ErrDuplicateReaction) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create %s: %w", kind, err)
	}
	return reaction, nil
}

// Unreact removes a reaction without touching the tuit stats.
func (u *ReactionUsecase) Unreact(ctx context.Context, kind entity.ReactionKind, userID, tuitID string) (int64, error) {
	repo, err := u.store(kind)
	if err != nil {
		return 0, err
	}
	deleted, err := repo.Delete(ctx, userID, tuitID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	return deleted, nil
}

// ListReactorsForTuit returns the reactions of one kind on a tuit with the users resolved.
func (u *ReactionUsecase) ListReactorsForTuit(ctx context.Context, kind entity.ReactionKind, tuitID string) ([]*entity.Reaction, error) {
	repo, err := u.store(kind)
	if err != nil {
		return nil, err
	}
	reactions, err := repo.FindByTuit(ctx, tuitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss for tuit %s: %w", kind, tuitID, err)
	}
	return reactions, nil
}

// ListTuitsReactedByUser returns the tuits a user reacted to with the given
// kind. Reactions whose tuit has been deleted are skipped.
func (u *ReactionUsecase) ListTuitsReactedByUser(ctx context.Context, kind entity.ReactionKind, userID string) ([]*entity.Tuit, error) {
	repo, err := u.store(kind)
	if err != nil {
		return nil, err
	}
	reactions, err := repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss of user %s: %w", kind, userID, err)
	}
	tuits := make([]*entity.Tuit, 0, len(reactions))
	for _, reaction := range reactions {
		if reaction.Tuit == nil {
			continue
		}
		tuits = append(tuits, reaction.Tuit)
	}
	return tuits, nil
}
