package store

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ayoisaiah/classfocus/internal/schedule"
	"github.com/ayoisaiah/classfocus/internal/tracker"
)

// CachedSchedule serves repeated timetable reads from memory for ttl. Failed
// reads are never cached.
type CachedSchedule struct {
	next  tracker.ScheduleRepository
	cache *expirable.LRU[string, []schedule.ClassSession]
}

func NewCachedSchedule(
	next tracker.ScheduleRepository,
	ttl time.Duration,
) *CachedSchedule {
	return &CachedSchedule{
		next:  next,
		cache: expirable.NewLRU[string, []schedule.ClassSession](1, nil, ttl),
	}
}

func (c *CachedSchedule) Read(
	ctx context.Context,
) ([]schedule.ClassSession, error) {
	if sessions, ok := c.cache.Get(timetableKey); ok {
		return sessions, nil
	}

	sessions, err := c.next.Read(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.Add(timetableKey, sessions)

	return sessions, nil
}

// Invalidate drops the cached timetable.
func (c *CachedSchedule) Invalidate() {
	c.cache.Purge()
}
