package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"vendorhub/core/constants"
	"vendorhub/core/errors"
	"vendorhub/core/logger"
	"vendorhub/modules/calendar/repository"
	"vendorhub/modules/calendar/service"
)

const TypeSyncAll = "calendar:sync_all"

type syncPayload struct {
	VendorID uuid.UUID `json:"vendor_id"`
}

// Scheduler enqueues calendar sync tasks through asynq. It implements
// service.SyncScheduler.
type Scheduler struct {
	client *asynq.Client
}

func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{client: client}
}

func (s *Scheduler) EnqueueSync(ctx context.Context, vendorID uuid.UUID) error {
	payload, err := json.Marshal(syncPayload{VendorID: vendorID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(constants.TaskCalendarSync, payload)
	_, err = s.client.EnqueueContext(ctx, task, asynq.Queue(constants.QueueDefault))
	return err
}

// Handler processes calendar sync tasks in the background worker.
type Handler struct {
	calendarService service.CalendarService
	repo            repository.CalendarRepository
	scheduler       *Scheduler
}

func NewHandler(calendarService service.CalendarService, repo repository.CalendarRepository, scheduler *Scheduler) *Handler {
	return &Handler{calendarService: calendarService, repo: repo, scheduler: scheduler}
}

func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskCalendarSync, h.HandleSync)
	mux.HandleFunc(TypeSyncAll, h.HandleSyncAll)
}

// HandleSync refreshes one vendor's feed. Non-retryable failures (no feed,
// crypto) are swallowed so asynq does not retry a task that cannot succeed.
func (h *Handler) HandleSync(ctx context.Context, t *asynq.Task) error {
	var p syncPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal sync payload: %v: %w", err, asynq.SkipRetry)
	}

	_, appErr := h.calendarService.Sync(ctx, p.VendorID)
	if appErr != nil {
		switch appErr.Code {
		case errors.ErrFeedTimeout:
			return appErr // retryable
		case errors.ErrNotFound, errors.ErrCryptoFailure, errors.ErrFeedFetch:
			logger.Warn("CalendarTasks:HandleSync:Skipped", "vendor_id", p.VendorID, "code", appErr.Code)
			return nil
		default:
			return appErr
		}
	}
	return nil
}

// HandleSyncAll fans out one sync task per connected vendor; registered with
// the asynq scheduler on a periodic interval.
func (h *Handler) HandleSyncAll(ctx context.Context, _ *asynq.Task) error {
	vendorIDs, err := h.repo.ListFeedVendorIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range vendorIDs {
		if err := h.scheduler.EnqueueSync(ctx, id); err != nil {
			logger.Warn("CalendarTasks:HandleSyncAll:Enqueue:Error", "vendor_id", id, "error", err)
		}
	}
	logger.Info("CalendarTasks:HandleSyncAll:Fanout", "vendor_count", len(vendorIDs))
	return nil
}
