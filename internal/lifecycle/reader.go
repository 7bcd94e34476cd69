package lifecycle

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
)

// ReaderSource publishes one transition per non-empty input line. Lines
// starting with '#' are ignored.
type ReaderSource struct {
	*Broadcaster
	r io.Reader
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{
		Broadcaster: NewBroadcaster(),
		r:           r,
	}
}

// Run reads until EOF or until ctx is cancelled. Unknown lines are logged
// and skipped.
func (s *ReaderSource) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.r)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		t, err := Parse(line)
		if err != nil {
			slog.WarnContext(ctx, "skipping lifecycle input", "line", line, "err", err)
			continue
		}

		s.Publish(t)
	}

	return scanner.Err()
}
