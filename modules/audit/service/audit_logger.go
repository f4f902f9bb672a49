package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vendorhub/core/logger"
	"vendorhub/core/secure"
	"vendorhub/modules/audit/entity"
	"vendorhub/modules/audit/repository"
)

// AuditLogger records security- and privacy-relevant calendar operations.
// Every URL-bearing field passes through the sanitizer before it is written
// anywhere; raw event content is never logged, only counts and ranges.
type AuditLogger struct {
	repo repository.AuditRepository
}

func NewAuditLogger(repo repository.AuditRepository) *AuditLogger {
	return &AuditLogger{repo: repo}
}

func (a *AuditLogger) FeedURLAdded(ctx context.Context, userID uuid.UUID, feedURL string) {
	a.append(ctx, userID, entity.ActionFeedURLAdded, entity.SeverityLow, entity.JSONB{
		"url": secure.SanitizeURL(feedURL),
	})
}

func (a *AuditLogger) FeedURLUpdated(ctx context.Context, userID uuid.UUID, feedURL string) {
	a.append(ctx, userID, entity.ActionFeedURLUpdated, entity.SeverityLow, entity.JSONB{
		"url": secure.SanitizeURL(feedURL),
	})
}

func (a *AuditLogger) FeedURLRemoved(ctx context.Context, userID uuid.UUID) {
	a.append(ctx, userID, entity.ActionFeedURLRemoved, entity.SeverityLow, nil)
}

func (a *AuditLogger) EventsFetched(ctx context.Context, userID uuid.UUID, count int, rangeStart, rangeEnd time.Time) {
	a.append(ctx, userID, entity.ActionEventsFetched, entity.SeverityLow, entity.JSONB{
		"event_count": count,
		"range_start": rangeStart.Format("2006-01-02"),
		"range_end":   rangeEnd.Format("2006-01-02"),
	})
}

func (a *AuditLogger) PrivacySettingsChanged(ctx context.Context, userID uuid.UUID, showDetails, enabled bool) {
	a.append(ctx, userID, entity.ActionPrivacySettingsChanged, entity.SeverityLow, entity.JSONB{
		"show_event_details":        showDetails,
		"external_calendar_enabled": enabled,
	})
}

func (a *AuditLogger) SecurityViolation(ctx context.Context, userID uuid.UUID, severity entity.Severity, reason, suspect string) {
	a.append(ctx, userID, entity.ActionSecurityViolation, severity, entity.JSONB{
		"reason":  reason,
		"suspect": secure.MaskSecrets(suspect),
	})
}

func (a *AuditLogger) append(ctx context.Context, userID uuid.UUID, action string, severity entity.Severity, details entity.JSONB) {
	entry := &entity.AuditEntry{
		UserID:    userID,
		Action:    action,
		Severity:  severity,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.repo.Append(ctx, entry); err != nil {
		// The audit trail must never take an operation down with it.
		logger.Error("AuditLogger:Append:Error", "action", action, "error", err)
	}

	switch severity {
	case entity.SeverityMedium, entity.SeverityHigh:
		logger.Warn("audit:"+action, "user_id", userID, "severity", severity, "details", details)
	default:
		logger.Info("audit:"+action, "user_id", userID, "details", details)
	}
}
