// Package scheduler runs the periodic background jobs: invite snapshot
// resync, reconciliation session expiry, and the weekly leaderboard
// digest email.
package scheduler

import (
	"context"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/invitetrackhq/invite-tracker-api/config"
	templates "github.com/invitetrackhq/invite-tracker-api/templates/html"
	"github.com/invitetrackhq/invite-tracker-api/tracker"
)

const digestLimit = 10

// Scheduler handles periodic background jobs for the invite tracker
type Scheduler struct {
	cron       *cron.Cron
	conf       config.Config
	Tracker    *tracker.Tracker
	Reconciler *tracker.Reconciler
}

// NewScheduler creates a new scheduler instance
func NewScheduler(conf config.Config, t *tracker.Tracker, reconciler *tracker.Reconciler) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		conf:       conf,
		Tracker:    t,
		Reconciler: reconciler,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Resync invite snapshots against the live platform. Heals any drift
	// from missed gateway events.
	_, err := s.cron.AddFunc(s.conf.ResyncCron, s.resyncSnapshots)
	if err != nil {
		zap.S().Errorw("failed to register snapshot resync job", "error", err)
	}

	// Abandon idle reconciliation sessions every minute
	_, err = s.cron.AddFunc("* * * * *", s.sweepSessions)
	if err != nil {
		zap.S().Errorw("failed to register session sweep job", "error", err)
	}

	// Weekly leaderboard digest, Mondays at 9 AM UTC
	_, err = s.cron.AddFunc("0 9 * * 1", s.sendLeaderboardDigests)
	if err != nil {
		zap.S().Errorw("failed to register leaderboard digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Invite tracker scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Invite tracker scheduler stopped")
}

// resyncSnapshots re-warms the snapshot cache and invite roster for every
// tracked space
func (s *Scheduler) resyncSnapshots() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	zap.S().Infow("Running snapshot resync job", "spaces", len(s.conf.SpaceIDs))
	if err := s.Tracker.Bootstrap(ctx, s.conf.SpaceIDs); err != nil {
		zap.S().Errorw("snapshot resync failed", "error", err)
	}
}

// sweepSessions abandons reconciliation sessions idle past their ttl
func (s *Scheduler) sweepSessions() {
	if swept := s.Reconciler.SweepExpired(); swept > 0 {
		zap.S().Infow("abandoned idle reconciliation sessions", "count", swept)
	}
}

// sendLeaderboardDigests emails the weekly top-referrer table for each
// tracked space. Skipped entirely when sendgrid or a recipient is not
// configured.
func (s *Scheduler) sendLeaderboardDigests() {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	recipient := os.Getenv("DIGEST_RECIPIENT_EMAIL")
	if apiKey == "" || recipient == "" {
		zap.S().Debug("digest email not configured, skipping")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, spaceID := range s.conf.SpaceIDs {
		entries, err := s.Tracker.QueryLeaderboard(ctx, spaceID, digestLimit)
		if err != nil {
			zap.S().Errorw("failed to build leaderboard digest",
				"spaceId", spaceID,
				"error", err,
			)
			continue
		}

		from := mail.NewEmail("Invite Tracker", os.Getenv("DIGEST_FROM_EMAIL"))
		to := mail.NewEmail("", recipient)
		subject := "Weekly Invite Leaderboard"
		html := templates.RenderLeaderboardDigestEmail(spaceID, entries)
		message := mail.NewSingleEmail(from, subject, to, "", html)

		client := sendgrid.NewSendClient(apiKey)
		resp, err := client.Send(message)
		if err != nil {
			zap.S().Errorw("failed to send leaderboard digest",
				"spaceId", spaceID,
				"error", err,
			)
			continue
		}
		zap.S().Infow("leaderboard digest sent",
			"spaceId", spaceID,
			"status", resp.StatusCode,
		)
	}
}
