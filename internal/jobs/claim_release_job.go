package jobs

import (
	"context"
	"log/slog"
	"time"

	"letterpost/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ClaimReleaseJob manages the scheduled release of stale task claims.
// Runs every minute to return tasks whose claiming courier went silent to
// the available pool.
type ClaimReleaseJob struct {
	handler  commands.ReleaseStaleClaimsCommandHandler
	claimTTL time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewClaimReleaseJob creates a new job for releasing stale claims.
// claimTTL is how long an accepted task may sit without a collection scan
// before the sweep reclaims it.
func NewClaimReleaseJob(
	handler commands.ReleaseStaleClaimsCommandHandler,
	claimTTL time.Duration,
	logger *slog.Logger,
) *ClaimReleaseJob {
	return &ClaimReleaseJob{
		handler:  handler,
		claimTTL: claimTTL,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "claim_release_job"),
	}
}

// Start begins the claim release job to run at the top of every minute.
func (j *ClaimReleaseJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReleaseStaleClaimsCommand(j.claimTTL)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Claim release command rejected", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Claim release sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Claim release job started (running every minute)",
		"claim_ttl", j.claimTTL.String())
	return nil
}

// Stop stops the claim release job.
func (j *ClaimReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Claim release job stopped")
}
