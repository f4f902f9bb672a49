package entity

import (
	"testing"
	"time"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusRescheduled, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusRescheduled, StatusConfirmed, true},
		{StatusRescheduled, StatusCancelled, true},
		{StatusRescheduled, StatusCompleted, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusRescheduled, false},
	}
	for _, tt := range tests {
		b := Booking{Status: tt.from}
		if got := b.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestBlocksDate(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusConfirmed, true},
		{StatusCompleted, true},
		{StatusCancelled, false},
		{StatusRescheduled, false},
	}
	for _, tt := range tests {
		b := Booking{Status: tt.status}
		if got := b.BlocksDate(); got != tt.want {
			t.Errorf("BlocksDate(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestOnDayIgnoresTimeOfDay(t *testing.T) {
	b := Booking{EventDate: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)}
	if !b.OnDay(time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC)) {
		t.Fatal("same calendar day must match regardless of clock time")
	}
	if b.OnDay(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("different day must not match")
	}
}
