package scheduler

import (
	"context"
	"time"

	"dorm-rental/internal/data/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	sessionCleanupSpec = "@every 1h"
	limiterCleanupSpec = "@every 10m"
	limiterMaxIdle     = 30 * time.Minute
	jobTimeout         = time.Minute
)

// LimiterCleaner drops idle rate-limit buckets.
type LimiterCleaner interface {
	Cleanup(maxIdle time.Duration) int
}

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	cron    *cron.Cron
	repo    *repository.Repository
	limiter LimiterCleaner
	log     *zap.Logger
}

func New(repo *repository.Repository, limiter LimiterCleaner, log *zap.Logger) (*Scheduler, error) {
	log = log.With(zap.String("component", "scheduler"))
	cl := cronLogger{log: log.Sugar()}

	s := &Scheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)), cron.WithLogger(cl)),
		repo:    repo,
		limiter: limiter,
		log:     log,
	}

	if _, err := s.cron.AddFunc(sessionCleanupSpec, s.cleanSessions); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(limiterCleanupSpec, s.cleanLimiter); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for running jobs or for ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Scheduler stop timed out")
	}
}

func (s *Scheduler) cleanSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	removed, err := s.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		s.log.Error("Failed to clean expired sessions", zap.Error(err))
		return
	}
	s.log.Info("Expired sessions cleaned", zap.Int64("removed", removed))
}

func (s *Scheduler) cleanLimiter() {
	if removed := s.limiter.Cleanup(limiterMaxIdle); removed > 0 {
		s.log.Debug("Idle rate limit buckets dropped", zap.Int("removed", removed))
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
