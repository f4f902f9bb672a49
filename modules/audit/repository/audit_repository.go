package repository

import (
	"context"

	"vendorhub/core/database"
	"vendorhub/core/logger"
	"vendorhub/modules/audit/entity"
)

type AuditRepository interface {
	Append(ctx context.Context, entry *entity.AuditEntry) error
}

type auditRepository struct {
	db database.IDatabase
}

func NewAuditRepository(db database.IDatabase) AuditRepository {
	return &auditRepository{db: db}
}

// Append inserts one log row. There is deliberately no update or delete on
// this table.
func (r *auditRepository) Append(ctx context.Context, entry *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_log (user_id, action, severity, details, created_at)
		VALUES (:user_id, :action, :severity, :details, :created_at)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, entry)
	if err != nil {
		logger.Error("AuditRepository:Append:Error:", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&entry.ID)
	}
	return nil
}
