package constants

import "time"

// Database pool settings.
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes.
const (
	RedisKeyFeedEvents = "calendar:feed_events:" // + vendorID
	RedisKeyLastSync   = "calendar:last_sync:"   // + vendorID
)

// Calendar sync.
const (
	FeedEventsCacheTTL = 15 * time.Minute
	FeedFetchTimeout   = 15 * time.Second
	MaxFeedURLLength   = 2048

	// Cap on the bytes read from a feed response, so a hostile feed cannot
	// exhaust memory. Real provider feeds sit well under this.
	MaxFeedBodyBytes = 10 << 20

	// Upper bound on instances produced when expanding one recurring event,
	// so a pathological RRULE cannot blow up a sync.
	MaxRecurrenceInstances = 366

	// Privacy sync ranges may span at most one year.
	MaxSyncRangeDays = 366
)

// Asynq task types and queues.
const (
	TaskCalendarSync = "calendar:sync"
	QueueDefault     = "default"
)
