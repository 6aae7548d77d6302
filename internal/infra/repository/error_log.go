package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"event-checkout/internal/pkg/pgconv"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/shared"
)

const insertErrorLogSQL = `
INSERT INTO error_logs (operation, message, stack_lines, context, occurred_at)
VALUES ($1, $2, $3, $4, $5)`

// ErrorLogRepository writes failure reports with the pool, never inside the
// transaction that failed.
type ErrorLogRepository struct {
	db     shared.DBTX
	logger *slog.Logger
}

func NewErrorLogRepository(db shared.DBTX, logger *slog.Logger) *ErrorLogRepository {
	return &ErrorLogRepository{db: db, logger: logger}
}

var _ commands.ErrorReporter = (*ErrorLogRepository)(nil)

// Report is best effort.
func (r *ErrorLogRepository) Report(ctx context.Context, report commands.ErrorReport) {
	payload, err := json.Marshal(report.Context)
	if err != nil {
		r.logger.WarnContext(ctx, "failed to encode error report context", "error", err.Error())
		payload = []byte("{}")
	}
	stack := report.StackLines
	if stack == nil {
		stack = []string{}
	}

	_, err = r.db.Exec(ctx, insertErrorLogSQL,
		report.Operation,
		report.Message,
		stack,
		payload,
		pgconv.TimeToPgtype(report.OccurredAt),
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to write error report",
			"operation", report.Operation,
			"error", err.Error())
	}
}
