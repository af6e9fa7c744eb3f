package notify

import (
	"errors"
	"slices"
	"strconv"
	"sync"
)

var (
	errShow = errors.New("notification daemon gone")
	errPlay = errors.New("no audio sink")

	errUnknownOption = errors.New("exit status 1: Unknown option --print-id")
)

// fakeSender records messages and hands out increasing IDs. A message
// that replaces another keeps the old ID.
type fakeSender struct {
	mu      sync.Mutex
	shown   []Message
	played  []string
	showErr error
	playErr error
	// showFn, when set, decides Show's result instead
	showFn func(Message) (string, error)
	nextID int
}

func (f *fakeSender) Show(m Message) (string, error) {
	f.mu.Lock()
	f.shown = append(f.shown, m)
	fn, err := f.showFn, f.showErr
	f.mu.Unlock()

	if fn != nil {
		return fn(m)
	}
	if err != nil {
		return "", err
	}
	if m.Replaces != "" {
		return m.Replaces, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return strconv.Itoa(f.nextID), nil
}

func (f *fakeSender) Play(soundFile string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, soundFile)
	return f.playErr
}

func (f *fakeSender) CanShow() bool { return true }
func (f *fakeSender) CanPlay() bool { return true }

func (f *fakeSender) shownCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.shown)
}

func (f *fakeSender) lastShown() Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.shown) == 0 {
		return Message{}
	}
	return f.shown[len(f.shown)-1]
}

// toolCall is one invocation seen by recordingRunner.
type toolCall struct {
	name string
	args []string
}

// recordingRunner stands in for exec in the platform sender tests.
type recordingRunner struct {
	calls []toolCall
	out   string
	err   error
	// reject, when set, fails calls whose arguments include this flag
	reject string
}

func (r *recordingRunner) run(name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, toolCall{name: name, args: args})
	if r.reject != "" && slices.Contains(args, r.reject) {
		return nil, errUnknownOption
	}
	return []byte(r.out), r.err
}

func hasAll(string) bool  { return true }
func hasNone(string) bool { return false }
