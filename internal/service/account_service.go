package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"commons/internal/middleware"
	"commons/internal/models"
	"commons/internal/observability"
	"commons/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// AccountService owns the user lifecycle state machine: Active,
// Deactivated, PendingDeletion and (by row absence) Deleted.
//
// Every transition that writes is_active or pending_deletion for a user is
// serialized on a per-user mutex, shared with the deferred deletion's fire
// path, so a reactivation and a firing deletion can never interleave into
// a deleted-but-reactivated account. Operations on different users do not
// contend.
type AccountService struct {
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	reaper      *Reaper

	mu        sync.Mutex
	userLocks map[uint]*sync.Mutex
}

// NewAccountService creates an AccountService whose deferred deletions
// fire after the given grace period.
func NewAccountService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	grace time.Duration,
) *AccountService {
	s := &AccountService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userLocks:   make(map[uint]*sync.Mutex),
	}
	s.reaper = NewReaper(grace, s.fireDeletion)
	return s
}

// Reaper exposes the deletion timer registry, mainly for shutdown.
func (s *AccountService) Reaper() *Reaper {
	return s.reaper
}

func (s *AccountService) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

// Deactivate flips the user and all their posts and comments to inactive.
// isHidden is untouched; the two axes are independent.
func (s *AccountService) Deactivate(ctx context.Context, userID uint) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.setUserActive(ctx, userID, false)
}

// ScheduleDeletion marks the account for deferred hard deletion and returns
// the deadline. The pending flag is persisted at arming time, before the
// timer starts. Scheduling again while already pending restarts the delay.
func (s *AccountService) ScheduleDeletion(ctx context.Context, userID uint) (time.Time, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return time.Time{}, err
	}
	if err := s.userRepo.SetPendingDeletion(ctx, userID, true); err != nil {
		return time.Time{}, err
	}
	if err := s.setUserActive(ctx, userID, false); err != nil {
		return time.Time{}, err
	}

	deadline := s.reaper.Arm(userID)
	middleware.Logger.InfoContext(ctx, "account deletion scheduled",
		slog.Any("user_id", userID),
		slog.Time("deadline", deadline),
	)
	return deadline, nil
}

// CancelDeletion clears the pending flag and disarms the timer. It does
// not restore is_active: the account stays deactivated until the next
// successful login.
func (s *AccountService) CancelDeletion(ctx context.Context, userID uint) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.PendingDeletion {
		return models.NewConflictError("No account deletion is pending")
	}

	if err := s.userRepo.SetPendingDeletion(ctx, userID, false); err != nil {
		return err
	}
	s.reaper.Disarm(userID)

	middleware.Logger.InfoContext(ctx, "account deletion cancelled", slog.Any("user_id", userID))
	return nil
}

// ReactivateOnLogin re-asserts the Active state after a successful
// credential check: clears pending deletion, disarms any timer, and
// reverses the inactive cascade across the user's posts and comments.
func (s *AccountService) ReactivateOnLogin(ctx context.Context, userID uint) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	s.reaper.Disarm(userID)
	if err := s.userRepo.SetPendingDeletion(ctx, userID, false); err != nil {
		return err
	}
	return s.setUserActive(ctx, userID, true)
}

// ResumePendingDeletions re-arms timers for users whose pending_deletion
// flag survived a restart, so the flag's invariant (pending implies an
// armed timer) holds again.
func (s *AccountService) ResumePendingDeletions(ctx context.Context) error {
	ids, err := s.userRepo.ListPendingDeletionIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		s.reaper.Arm(id)
	}
	if len(ids) > 0 {
		middleware.Logger.InfoContext(ctx, "re-armed pending account deletions", slog.Int("count", len(ids)))
	}
	return nil
}

// setUserActive applies the owner-driven cascade: the user row first, then
// bulk updates over the posts and comments they authored. The three writes
// are not atomic as a whole; each is idempotent, so re-running converges.
func (s *AccountService) setUserActive(ctx context.Context, userID uint, active bool) error {
	if err := s.userRepo.SetActive(ctx, userID, active); err != nil {
		return err
	}
	if err := s.postRepo.SetActiveForAuthor(ctx, userID, active); err != nil {
		return err
	}
	return s.commentRepo.SetActiveForAuthor(ctx, userID, active)
}

// fireDeletion runs when a deletion timer elapses. It must not trust any
// state captured at arming time: the conditional delete re-reads the
// persisted pending_deletion flag and acts in the same statement. Zero
// rows affected means an intervening cancel or login cleared the flag, and
// the firing is a silent no-op.
//
// Comments authored by other users on the deleted user's posts are
// retained as orphans rather than purged; only content authored by the
// deleted user is removed.
func (s *AccountService) fireDeletion(userID uint) {
	// Runs outside any request, so it opens its own root span.
	span, ctx := observability.NewSpan(context.Background(), "account.fire_deletion")
	span.AddAttributes(attribute.Int64("user.id", int64(userID)))
	defer span.End()

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	deleted, err := s.userRepo.DeleteIfPendingDeletion(ctx, userID)
	if err != nil {
		span.SetError(err)
		middleware.Logger.ErrorContext(ctx, "deferred account deletion failed",
			slog.Any("user_id", userID),
			slog.String("error", err.Error()),
		)
		return
	}
	if !deleted {
		middleware.AccountDeletionsAborted.Inc()
		return
	}

	if err := s.postRepo.DeleteByAuthor(ctx, userID); err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to delete posts for removed account",
			slog.Any("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
	if err := s.commentRepo.DeleteByAuthor(ctx, userID); err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to delete comments for removed account",
			slog.Any("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	middleware.AccountDeletionsFired.Inc()
	middleware.Logger.InfoContext(ctx, "account hard-deleted", slog.Any("user_id", userID))
}
