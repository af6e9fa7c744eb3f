//go:build linux

package notify

import (
	"os"
	"strings"
	"sync/atomic"
)

// linuxSender shells out to notify-send and paplay.
type linuxSender struct {
	run     runFunc
	display bool
	player  bool
	// noIDs is set once notify-send has rejected --print-id
	noIDs atomic.Bool
}

func platformSender(has func(string) bool, run runFunc) Sender {
	return &linuxSender{
		run:     run,
		display: has("notify-send") && (os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""),
		player:  has("paplay"),
	}
}

// notifySendArgs builds the argument list. Without IDs every message is a
// new notification, as libnotify before 0.7.9 knows no --print-id.
func notifySendArgs(m Message, withIDs bool) []string {
	urgency := "normal"
	if m.Urgent {
		urgency = "critical"
	}
	args := []string{"-a", appName, "-u", urgency}
	if withIDs {
		args = append([]string{"--print-id"}, args...)
		if m.Replaces != "" {
			args = append(args, "--replace-id", m.Replaces)
		}
	}
	return append(args, m.Title, m.Body)
}

func (s *linuxSender) Show(m Message) (string, error) {
	if !s.display {
		return "", nil
	}
	if s.noIDs.Load() {
		_, err := s.run("notify-send", notifySendArgs(m, false)...)
		return "", err
	}

	out, err := s.run("notify-send", notifySendArgs(m, true)...)
	if err == nil {
		return strings.TrimSpace(string(out)), nil
	}
	if _, retryErr := s.run("notify-send", notifySendArgs(m, false)...); retryErr != nil {
		return "", err
	}
	s.noIDs.Store(true)
	return "", nil
}

// Play is silent without a sound file; freedesktop has no standard chime path.
func (s *linuxSender) Play(soundFile string) error {
	if !s.player || soundFile == "" {
		return nil
	}
	_, err := s.run("paplay", soundFile)
	return err
}

func (s *linuxSender) CanShow() bool { return s.display }
func (s *linuxSender) CanPlay() bool { return s.player }
