package sync

import (
	"context"
	"fmt"
	"log"
	gosync "sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// BadgeSummary is a cached snapshot of one user's unread indicators.
// Displayed values may lag true state by up to one refresh interval.
type BadgeSummary struct {
	UnreadFeedback   int
	UnreadReplyTasks []uuid.UUID
	RefreshedAt      time.Time
}

// BadgeRefresher recomputes per-user unread summaries on a fixed interval.
// Aggregation is pull-based: nothing here reacts to individual mutations,
// the whole picture is rebuilt from current records on every tick.
type BadgeRefresher struct {
	userRepo *repository.UserRepository
	feedback *service.FeedbackService
	comments *service.CommentService
	interval time.Duration
	cron     *cron.Cron

	mu        gosync.RWMutex
	summaries map[uuid.UUID]BadgeSummary
}

func NewBadgeRefresher(
	userRepo *repository.UserRepository,
	feedback *service.FeedbackService,
	comments *service.CommentService,
	interval time.Duration,
) *BadgeRefresher {
	return &BadgeRefresher{
		userRepo:  userRepo,
		feedback:  feedback,
		comments:  comments,
		interval:  interval,
		cron:      cron.New(cron.WithSeconds()),
		summaries: make(map[uuid.UUID]BadgeSummary),
	}
}

// Start schedules the periodic recomputation and runs one refresh
// immediately so the cache is warm before the first tick.
func (r *BadgeRefresher) Start() error {
	seconds := int(r.interval.Seconds())
	if seconds <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", r.interval)
	}

	spec := fmt.Sprintf("@every %ds", seconds)
	if _, err := r.cron.AddFunc(spec, func() {
		r.Refresh(context.Background())
	}); err != nil {
		return err
	}

	r.Refresh(context.Background())
	r.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running refresh to finish.
func (r *BadgeRefresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// Refresh rebuilds the summaries of every user from current records. Users
// whose recomputation fails keep no stale entry; the failure is logged and
// the rest of the pass continues.
func (r *BadgeRefresher) Refresh(ctx context.Context) {
	users, err := r.userRepo.GetAll(ctx)
	if err != nil {
		log.Printf("⚠️  Badge refresh skipped, failed to list users: %v", err)
		return
	}

	now := time.Now()
	summaries := make(map[uuid.UUID]BadgeSummary, len(users))
	for _, user := range users {
		unread, err := r.feedback.ListUnread(ctx, user.ID, 0)
		if err != nil {
			log.Printf("⚠️  Badge refresh failed for user %s: %v", user.ID, err)
			continue
		}
		replyTasks, err := r.comments.UnreadReplyTasks(ctx, user.ID)
		if err != nil {
			log.Printf("⚠️  Badge refresh failed for user %s: %v", user.ID, err)
			continue
		}
		summaries[user.ID] = BadgeSummary{
			UnreadFeedback:   len(unread),
			UnreadReplyTasks: replyTasks,
			RefreshedAt:      now,
		}
	}

	r.mu.Lock()
	r.summaries = summaries
	r.mu.Unlock()
}

// Summary returns the cached snapshot for a user, if one exists.
func (r *BadgeRefresher) Summary(userID uuid.UUID) (BadgeSummary, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	summary, ok := r.summaries[userID]
	return summary, ok
}
