//go:build darwin

package notify

import "fmt"

const macChime = "/System/Library/Sounds/Glass.aiff"

// darwinSender uses osascript and afplay. Notification Center offers
// scripts no way to replace a notification, so Show always posts anew.
type darwinSender struct {
	run       runFunc
	osascript bool
	afplay    bool
}

func platformSender(has func(string) bool, run runFunc) Sender {
	return &darwinSender{run: run, osascript: has("osascript"), afplay: has("afplay")}
}

func (s *darwinSender) Show(m Message) (string, error) {
	if !s.osascript {
		return "", nil
	}
	_, err := s.run("osascript", "-e", fmt.Sprintf("display notification %q with title %q", m.Body, m.Title))
	return "", err
}

func (s *darwinSender) Play(soundFile string) error {
	if !s.afplay {
		return nil
	}
	if soundFile == "" {
		soundFile = macChime
	}
	_, err := s.run("afplay", soundFile)
	return err
}

func (s *darwinSender) CanShow() bool { return s.osascript }
func (s *darwinSender) CanPlay() bool { return s.afplay }
