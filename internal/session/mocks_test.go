package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// scriptedSource returns counts in order and cancels once the last one is read.
// A non-nil entry in errs at the same index is returned instead of the count.
type scriptedSource struct {
	counts []int
	errs   map[int]error
	cancel context.CancelFunc
	reads  int
}

func (s *scriptedSource) Name() string { return "draft.md" }

func (s *scriptedSource) Count() (int, error) {
	i := s.reads
	s.reads++
	if err, ok := s.errs[i]; ok {
		return 0, err
	}
	if i >= len(s.counts)-1 {
		if s.cancel != nil {
			s.cancel()
		}
		return s.counts[len(s.counts)-1], nil
	}
	return s.counts[i], nil
}

// constantSource returns the same count n+1 times then cancels.
func constantSource(count, polls int, cancel context.CancelFunc) *scriptedSource {
	counts := make([]int, polls+1)
	for i := range counts {
		counts[i] = count
	}
	return &scriptedSource{counts: counts, cancel: cancel}
}

type message struct {
	title string
	body  string
}

type recordingNotifier struct {
	liveErr   error
	updateErr error
	opened    []message
	updates   []message
	alerts    []message
}

func (n *recordingNotifier) Live(title, body string) (LiveUpdater, error) {
	if n.liveErr != nil {
		return nil, n.liveErr
	}
	n.opened = append(n.opened, message{title, body})
	return &recordingLive{n: n}, nil
}

func (n *recordingNotifier) Alert(title, body string) {
	n.alerts = append(n.alerts, message{title, body})
}

type recordingLive struct {
	n *recordingNotifier
}

func (l *recordingLive) Update(title, body string) error {
	l.n.updates = append(l.n.updates, message{title, body})
	return l.n.updateErr
}

var errDisk = errors.New("disk on fire")
