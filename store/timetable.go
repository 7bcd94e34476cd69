package store

import (
	"context"
	"slices"
	"strconv"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/classfocus/internal/schedule"
)

// Read returns the stored timetable in stored order. A missing timetable is
// an empty one. Any other failure is reported as ErrScheduleUnavailable.
func (c *Client) Read(ctx context.Context) ([]schedule.ClassSession, error) {
	var sessions []schedule.ClassSession

	err := c.view(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, kvBucket)
		if err != nil {
			return err
		}

		sessions, err = schedule.Decode(b.Get([]byte(timetableKey)))

		return err
	})
	if err != nil {
		return nil, ErrScheduleUnavailable.Wrap(err)
	}

	return sessions, nil
}

// Write replaces the stored timetable.
func (c *Client) Write(
	ctx context.Context,
	sessions []schedule.ClassSession,
) error {
	data, err := schedule.Encode(sessions)
	if err != nil {
		return err
	}

	return c.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, kvBucket)
		if err != nil {
			return err
		}

		return b.Put([]byte(timetableKey), data)
	})
}

// Add validates s, assigns it an id if it has none, and appends it to the
// timetable.
func (c *Client) Add(
	ctx context.Context,
	s schedule.ClassSession,
) (schedule.ClassSession, error) {
	if _, _, err := s.Window(); err != nil {
		return s, err
	}

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	err := c.modify(ctx, func(sessions []schedule.ClassSession) ([]schedule.ClassSession, error) {
		return append(sessions, s), nil
	})

	return s, err
}

// Remove deletes the session that ref refers to.
func (c *Client) Remove(
	ctx context.Context,
	ref string,
) (schedule.ClassSession, error) {
	var removed schedule.ClassSession

	err := c.modify(ctx, func(sessions []schedule.ClassSession) ([]schedule.ClassSession, error) {
		i, err := indexOf(sessions, ref)
		if err != nil {
			return nil, err
		}

		removed = sessions[i]

		return slices.Delete(sessions, i, i+1), nil
	})

	return removed, err
}

// Update replaces the session that ref refers to with the result of fn. The
// id is preserved and the new bounds must be valid.
func (c *Client) Update(
	ctx context.Context,
	ref string,
	fn func(schedule.ClassSession) (schedule.ClassSession, error),
) (schedule.ClassSession, error) {
	var updated schedule.ClassSession

	err := c.modify(ctx, func(sessions []schedule.ClassSession) ([]schedule.ClassSession, error) {
		i, err := indexOf(sessions, ref)
		if err != nil {
			return nil, err
		}

		updated, err = fn(sessions[i])
		if err != nil {
			return nil, err
		}

		updated.ID = sessions[i].ID

		if _, _, err := updated.Window(); err != nil {
			return nil, err
		}

		sessions[i] = updated

		return sessions, nil
	})

	return updated, err
}

// indexOf finds the session whose id is ref. A numeric ref that matches no id
// is a 1-based position in the sorted listing.
func indexOf(sessions []schedule.ClassSession, ref string) (int, error) {
	i := slices.IndexFunc(sessions, func(s schedule.ClassSession) bool {
		return s.ID == ref
	})
	if i >= 0 {
		return i, nil
	}

	n, err := strconv.Atoi(ref)
	sorted := schedule.Sorted(sessions)

	if err != nil || n < 1 || n > len(sorted) {
		return -1, ErrSessionNotFound.Fmt(ref)
	}

	return slices.Index(sessions, sorted[n-1]), nil
}

func (c *Client) modify(
	ctx context.Context,
	fn func([]schedule.ClassSession) ([]schedule.ClassSession, error),
) error {
	return c.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, kvBucket)
		if err != nil {
			return err
		}

		sessions, err := schedule.Decode(b.Get([]byte(timetableKey)))
		if err != nil {
			return err
		}

		sessions, err = fn(sessions)
		if err != nil {
			return err
		}

		data, err := schedule.Encode(sessions)
		if err != nil {
			return err
		}

		return b.Put([]byte(timetableKey), data)
	})
}
