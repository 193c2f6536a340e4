package jobs

import (
	"context"
	"log/slog"

	"dotrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TokenCleanupJob purges expired password reset tokens on a schedule.
// Runs at the top of every hour.
type TokenCleanupJob struct {
	handler commands.CleanupResetTokensCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTokenCleanupJob creates a new job for reset token cleanup.
// Uses CleanupResetTokensCommandHandler to remove tokens past their expiry.
func NewTokenCleanupJob(handler commands.CleanupResetTokensCommandHandler, logger *slog.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "token_cleanup_job"),
	}
}

// Start begins the token cleanup job to run hourly.
func (j *TokenCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCleanupResetTokensCommand()

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Token cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired reset tokens removed", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token cleanup job started (running hourly)")
	return nil
}

// Stop stops the token cleanup job.
func (j *TokenCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token cleanup job stopped")
}
