package entity

import (
	"github.com/google/uuid"

	"vendorhub/core/entity"
)

type Notification struct {
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	Title   string    `db:"title" json:"title"`
	Message string    `db:"message" json:"message"`
	Type    string    `db:"type" json:"type"`
	IsRead  bool      `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

func (Notification) TableName() string {
	return "notifications"
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
