package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"spa-admin/models"
)

const defaultLogLimit = 100

// ActionLogger stores admin mutations for the activity log page.
type ActionLogger interface {
	Record(ctx context.Context, entry models.ActionLog)
	List(ctx context.Context, limit int) ([]models.ActionLog, error)
}

// NopActionLogger is used when no database is configured.
type NopActionLogger struct{}

func (NopActionLogger) Record(context.Context, models.ActionLog) {}

func (NopActionLogger) List(context.Context, int) ([]models.ActionLog, error) {
	return []models.ActionLog{}, nil
}

type GormActionLogger struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormActionLogger(db *gorm.DB, logger *slog.Logger) *GormActionLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormActionLogger{db: db, logger: logger}
}

// Record never fails the caller; a storage error is only logged.
func (l *GormActionLogger) Record(ctx context.Context, entry models.ActionLog) {
	if err := l.db.WithContext(ctx).Create(&entry).Error; err != nil {
		l.logger.Error("failed to record action",
			"action", entry.Action,
			"target", entry.TargetID,
			"error", err,
		)
	}
}

func (l *GormActionLogger) List(ctx context.Context, limit int) ([]models.ActionLog, error) {
	if limit <= 0 || limit > 1000 {
		limit = defaultLogLimit
	}
	var logs []models.ActionLog
	if err := l.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// recordAction classifies err into an outcome and stores the entry.
func recordAction(ctx context.Context, l ActionLogger, actor, action, target string, err error, okMessage string) {
	if l == nil {
		return
	}
	entry := models.ActionLog{
		Actor:    actor,
		Action:   action,
		TargetID: target,
		Outcome:  models.OutcomeSuccess,
		Message:  okMessage,
	}
	if err != nil {
		entry.Outcome = models.OutcomeFailed
		var v *ValidationError
		if errors.As(err, &v) {
			entry.Outcome = models.OutcomeBlocked
		}
		entry.Message = err.Error()
	}
	l.Record(ctx, entry)
}
