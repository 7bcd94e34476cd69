package store

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/classfocus/internal/timeutil"
	"github.com/ayoisaiah/classfocus/internal/tracker"
)

// SaveSummary records a finished class session, keyed by its end instant.
func (c *Client) SaveSummary(ctx context.Context, s tracker.Summary) error {
	value, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return c.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, historyBucket)
		if err != nil {
			return err
		}

		return b.Put(timeutil.ToKey(s.EndedAt.UTC()), value)
	})
}

// History returns the sessions that ended within [start, end], oldest first.
// A zero start means no lower bound.
func (c *Client) History(
	ctx context.Context,
	start, end time.Time,
) ([]tracker.Summary, error) {
	var summaries []tracker.Summary

	minKey := timeutil.ToKey(start.UTC())
	maxKey := timeutil.ToKey(end.UTC())

	err := c.view(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, historyBucket)
		if err != nil {
			return err
		}

		cur := b.Cursor()

		k, v := cur.First()
		if !start.IsZero() {
			k, v = cur.Seek(minKey)
		}

		for ; k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			var s tracker.Summary

			err := json.Unmarshal(v, &s)
			if err != nil {
				return err
			}

			summaries = append(summaries, s)
		}

		return nil
	})

	return summaries, err
}
