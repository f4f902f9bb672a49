package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vendorhub/core/cache"
	"vendorhub/core/constants"
	"vendorhub/core/errors"
	"vendorhub/core/logger"
	"vendorhub/core/secure"
	auditEntity "vendorhub/modules/audit/entity"
	auditService "vendorhub/modules/audit/service"
	availRepo "vendorhub/modules/availability/repository"
	bookingRepo "vendorhub/modules/booking/repository"
	"vendorhub/modules/calendar/dto"
	"vendorhub/modules/calendar/entity"
	"vendorhub/modules/calendar/repository"
)

// SyncScheduler enqueues a background refresh for one vendor's feed. The
// asynq-backed implementation lives in the tasks package.
type SyncScheduler interface {
	EnqueueSync(ctx context.Context, vendorID uuid.UUID) error
}

type CalendarService interface {
	ConnectFeed(ctx context.Context, vendorID uuid.UUID, rawURL string) *errors.AppError
	DisconnectFeed(ctx context.Context, vendorID uuid.UUID) *errors.AppError
	GetFeedStatus(ctx context.Context, vendorID uuid.UUID) (*dto.FeedStatusResponse, *errors.AppError)

	Sync(ctx context.Context, vendorID uuid.UUID) ([]entity.ExternalEvent, *errors.AppError)
	GetAvailabilityView(ctx context.Context, vendorID uuid.UUID, start, end time.Time) (*dto.AvailabilityViewResponse, *errors.AppError)

	GetPrivacySettings(ctx context.Context, vendorID uuid.UUID) (*dto.PrivacySettingsResponse, *errors.AppError)
	UpdatePrivacySettings(ctx context.Context, vendorID uuid.UUID, req *dto.UpdatePrivacySettingsRequest) (*dto.PrivacySettingsResponse, *errors.AppError)
}

type calendarService struct {
	repo      repository.CalendarRepository
	availRepo availRepo.AvailabilityRepository
	bookRepo  bookingRepo.BookingRepository
	cache     cache.Cache
	cipher    *secure.FeedCipher
	fetcher   *FeedFetcher
	audit     *auditService.AuditLogger
	scheduler SyncScheduler

	tracker syncTracker
}

func NewCalendarService(
	repo repository.CalendarRepository,
	availabilityRepo availRepo.AvailabilityRepository,
	bookingRepository bookingRepo.BookingRepository,
	c cache.Cache,
	cipher *secure.FeedCipher,
	fetcher *FeedFetcher,
	audit *auditService.AuditLogger,
	scheduler SyncScheduler,
) CalendarService {
	return &calendarService{
		repo:      repo,
		availRepo: availabilityRepo,
		bookRepo:  bookingRepository,
		cache:     c,
		cipher:    cipher,
		fetcher:   fetcher,
		audit:     audit,
		scheduler: scheduler,
		tracker:   syncTracker{seq: make(map[uuid.UUID]uint64)},
	}
}

// syncTracker hands out per-vendor sequence numbers so a fetch that was
// superseded mid-flight cannot overwrite fresher state, regardless of
// completion order.
type syncTracker struct {
	mu  sync.Mutex
	seq map[uuid.UUID]uint64
}

func (t *syncTracker) begin(vendorID uuid.UUID) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq[vendorID]++
	return t.seq[vendorID]
}

func (t *syncTracker) isCurrent(vendorID uuid.UUID, seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq[vendorID] == seq
}

// ConnectFeed validates, encrypts, and stores a vendor's feed URL, defaults
// privacy settings on first connection, and schedules the initial sync.
func (s *calendarService) ConnectFeed(ctx context.Context, vendorID uuid.UUID, rawURL string) *errors.AppError {
	result := secure.ValidateFeedURL(rawURL)
	if !result.IsValid {
		if isSuspiciousURL(rawURL) {
			s.audit.SecurityViolation(ctx, vendorID, auditEntity.SeverityMedium, result.Error, rawURL)
		}
		return errors.NewAppError(errors.ErrFeedValidation, result.Error, nil)
	}

	encrypted, err := s.cipher.Encrypt(strings.TrimSpace(rawURL))
	if err != nil {
		logger.Error("CalendarService:ConnectFeed:Encrypt:Error:", err)
		return errors.NewAppError(errors.ErrCryptoFailure, "could not secure the calendar URL", err)
	}

	existing, err := s.repo.GetFeedReference(ctx, vendorID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to look up calendar connection", err)
	}

	ref := &entity.CalendarFeedReference{VendorID: vendorID, EncryptedURL: encrypted}
	if err := s.repo.UpsertFeedReference(ctx, ref); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to save calendar connection", err)
	}

	// Replacing the URL invalidates whatever was cached for the old feed.
	if err := s.cache.ClearFeedEvents(ctx, vendorID.String()); err != nil {
		logger.Warn("CalendarService:ConnectFeed:ClearCache:Error", "vendor_id", vendorID, "error", err)
	}

	settings, err := s.repo.GetPrivacySettings(ctx, vendorID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to load privacy settings", err)
	}
	if settings == nil {
		defaults := entity.DefaultPrivacySettings(vendorID, time.Now().UTC())
		if err := s.repo.UpsertPrivacySettings(ctx, &defaults); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to initialize privacy settings", err)
		}
	}

	if existing != nil {
		s.audit.FeedURLUpdated(ctx, vendorID, rawURL)
	} else {
		s.audit.FeedURLAdded(ctx, vendorID, rawURL)
	}

	if s.scheduler != nil {
		if err := s.scheduler.EnqueueSync(ctx, vendorID); err != nil {
			logger.Warn("CalendarService:ConnectFeed:EnqueueSync:Error", "vendor_id", vendorID, "error", err)
		}
	}
	return nil
}

// DisconnectFeed removes the stored feed and everything derived from it.
func (s *calendarService) DisconnectFeed(ctx context.Context, vendorID uuid.UUID) *errors.AppError {
	if err := s.repo.DeleteFeedReference(ctx, vendorID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to disconnect calendar", err)
	}
	if err := s.cache.ClearFeedEvents(ctx, vendorID.String()); err != nil {
		logger.Warn("CalendarService:DisconnectFeed:ClearCache:Error", "vendor_id", vendorID, "error", err)
	}
	s.audit.FeedURLRemoved(ctx, vendorID)
	return nil
}

func (s *calendarService) GetFeedStatus(ctx context.Context, vendorID uuid.UUID) (*dto.FeedStatusResponse, *errors.AppError) {
	ref, err := s.repo.GetFeedReference(ctx, vendorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up calendar connection", err)
	}
	if ref == nil {
		return &dto.FeedStatusResponse{Connected: false}, nil
	}
	resp := &dto.FeedStatusResponse{Connected: true}
	if ref.LastSyncAt != nil {
		resp.LastSyncAt = ref.LastSyncAt.Format(time.RFC3339)
	}
	return resp, nil
}

// Sync runs one fetch-parse-filter cycle for the vendor's feed and caches
// the outcome, unless a newer sync started while this one was in flight.
func (s *calendarService) Sync(ctx context.Context, vendorID uuid.UUID) ([]entity.ExternalEvent, *errors.AppError) {
	settings, err := s.repo.GetPrivacySettings(ctx, vendorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load privacy settings", err)
	}
	if settings == nil || !settings.ExternalCalendarEnabled {
		return []entity.ExternalEvent{}, nil
	}

	ref, err := s.repo.GetFeedReference(ctx, vendorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up calendar connection", err)
	}
	if ref == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "no calendar connected", nil)
	}

	seq := s.tracker.begin(vendorID)

	feedURL, err := s.cipher.Decrypt(ref.EncryptedURL)
	if err != nil {
		// An unreadable feed URL cannot be silently treated as "no feed".
		logger.Error("CalendarService:Sync:Decrypt:Error:", err)
		return nil, errors.NewAppError(errors.ErrCryptoFailure, "stored calendar URL could not be read, please reconnect the calendar", err)
	}

	result := s.fetcher.FetchAndParse(ctx, feedURL)
	if !result.Success {
		code := errors.ErrFeedFetch
		if result.Retryable {
			code = errors.ErrFeedTimeout
		}
		return nil, errors.NewAppError(code, result.Error, nil)
	}

	events := ExpandRecurring(result.Events, settings.SyncRangeStart, settings.SyncRangeEnd)
	events = filterToRange(events, settings.SyncRangeStart, settings.SyncRangeEnd)
	events = ApplyPrivacy(events, *settings)

	if !s.tracker.isCurrent(vendorID, seq) {
		logger.Info("CalendarService:Sync:Superseded", "vendor_id", vendorID, "seq", seq)
		return events, nil
	}

	now := time.Now().UTC()
	if err := s.cache.SetFeedEvents(ctx, vendorID.String(), events, constants.FeedEventsCacheTTL); err != nil {
		logger.Warn("CalendarService:Sync:CacheWrite:Error", "vendor_id", vendorID, "error", err)
	}
	if err := s.cache.SetLastSync(ctx, vendorID.String(), now); err != nil {
		logger.Warn("CalendarService:Sync:LastSync:Error", "vendor_id", vendorID, "error", err)
	}
	if err := s.repo.TouchLastSync(ctx, vendorID, now); err != nil {
		logger.Warn("CalendarService:Sync:TouchLastSync:Error", "vendor_id", vendorID, "error", err)
	}

	s.audit.EventsFetched(ctx, vendorID, len(events), settings.SyncRangeStart, settings.SyncRangeEnd)
	return events, nil
}

// GetAvailabilityView merges external events, availability records, and
// bookings into per-day statuses for the requested range. A failed feed
// degrades gracefully: the vendor's own data still renders with zero
// external events.
func (s *calendarService) GetAvailabilityView(ctx context.Context, vendorID uuid.UUID, start, end time.Time) (*dto.AvailabilityViewResponse, *errors.AppError) {
	if end.Before(start) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "range end must not be before start", nil)
	}
	if end.Sub(start) > time.Duration(constants.MaxSyncRangeDays)*24*time.Hour {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "range cannot exceed one year", nil)
	}

	var events []entity.ExternalEvent
	var warning string

	hit, err := s.cache.GetFeedEvents(ctx, vendorID.String(), &events)
	if err != nil {
		logger.Warn("CalendarService:GetAvailabilityView:CacheRead:Error", "vendor_id", vendorID, "error", err)
	}
	if !hit {
		synced, appErr := s.Sync(ctx, vendorID)
		switch {
		case appErr == nil:
			events = synced
		case appErr.Code == errors.ErrNotFound:
			events = nil // no feed connected; nothing external to merge
		default:
			events = nil
			warning = appErr.Message
		}
	}

	records, err := s.availRepo.ListRange(ctx, vendorID, start, end)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load availability", err)
	}
	bookings, err := s.bookRepo.ListByVendorBetween(ctx, vendorID, start, end)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load bookings", err)
	}

	statuses := GetRangeStatus(start, end, events, records, bookings)

	days := make([]dto.DayStatusResponse, 0, len(statuses))
	for _, st := range statuses {
		day := dto.DayStatusResponse{
			Date:              st.Date.Format("2006-01-02"),
			IsAvailable:       st.IsAvailable,
			HasExternalEvents: st.HasExternalEvents,
			HasBookings:       st.HasBookings,
			HasConflict:       st.HasConflict,
		}
		if st.HasExternalEvents {
			for _, ev := range EventsOnDay(st.Date, events) {
				day.Events = append(day.Events, dto.ExternalEventResponse{
					ID:          ev.ID,
					Title:       ev.Title,
					Start:       ev.Start.Format(time.RFC3339),
					End:         ev.End.Format(time.RFC3339),
					Description: ev.Description,
					Location:    ev.Location,
					IsAllDay:    ev.IsAllDay,
				})
			}
		}
		days = append(days, day)
	}

	resp := &dto.AvailabilityViewResponse{Days: days, Warning: warning}
	if lastSync, ok, err := s.cache.GetLastSync(ctx, vendorID.String()); err == nil && ok {
		resp.LastSyncAt = lastSync.Format(time.RFC3339)
	}
	return resp, nil
}

func (s *calendarService) GetPrivacySettings(ctx context.Context, vendorID uuid.UUID) (*dto.PrivacySettingsResponse, *errors.AppError) {
	settings, err := s.repo.GetPrivacySettings(ctx, vendorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load privacy settings", err)
	}
	if settings == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "no privacy settings configured", nil)
	}
	return privacySettingsResponse(settings), nil
}

func (s *calendarService) UpdatePrivacySettings(ctx context.Context, vendorID uuid.UUID, req *dto.UpdatePrivacySettingsRequest) (*dto.PrivacySettingsResponse, *errors.AppError) {
	start, err := time.Parse("2006-01-02", req.SyncRangeStart)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid sync range start date", err)
	}
	end, err := time.Parse("2006-01-02", req.SyncRangeEnd)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid sync range end date", err)
	}

	settings := &entity.PrivacySettings{
		VendorID:                vendorID,
		ExternalCalendarEnabled: req.ExternalCalendarEnabled,
		SyncRangeStart:          start,
		SyncRangeEnd:            end,
		ShowEventDetails:        req.ShowEventDetails,
	}
	if err := settings.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), nil)
	}

	if err := s.repo.UpsertPrivacySettings(ctx, settings); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save privacy settings", err)
	}

	// Cached events were filtered under the old settings.
	if err := s.cache.ClearFeedEvents(ctx, vendorID.String()); err != nil {
		logger.Warn("CalendarService:UpdatePrivacySettings:ClearCache:Error", "vendor_id", vendorID, "error", err)
	}

	s.audit.PrivacySettingsChanged(ctx, vendorID, settings.ShowEventDetails, settings.ExternalCalendarEnabled)
	return privacySettingsResponse(settings), nil
}

func privacySettingsResponse(settings *entity.PrivacySettings) *dto.PrivacySettingsResponse {
	return &dto.PrivacySettingsResponse{
		ExternalCalendarEnabled: settings.ExternalCalendarEnabled,
		SyncRangeStart:          settings.SyncRangeStart.Format("2006-01-02"),
		SyncRangeEnd:            settings.SyncRangeEnd.Format("2006-01-02"),
		ShowEventDetails:        settings.ShowEventDetails,
	}
}

func filterToRange(events []entity.ExternalEvent, start, end time.Time) []entity.ExternalEvent {
	out := make([]entity.ExternalEvent, 0, len(events))
	for _, ev := range events {
		if ev.Start.Before(start) || ev.Start.After(end) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// isSuspiciousURL spots scheme-injection attempts worth a security log entry
// on top of the regular validation rejection.
func isSuspiciousURL(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	for _, prefix := range []string{"javascript:", "file:", "data:", "vbscript:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
