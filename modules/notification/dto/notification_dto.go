package dto

import "github.com/google/uuid"

type CreateNotificationRequest struct {
	UserID  uuid.UUID `json:"user_id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
}

type MarkAsReadRequest struct {
	IDs []string `json:"ids"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}
