package notify

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

const appName = "wordpace"

// Sender talks to the desktop notification tools of one platform.
type Sender interface {
	// Show displays m and returns an ID that a later Message can
	// pass in Replaces. Platforms that cannot replace return "".
	Show(m Message) (string, error)
	// Play plays soundFile, or the platform chime when it is empty.
	Play(soundFile string) error
	CanShow() bool
	CanPlay() bool
}

// runFunc runs an external tool and returns its stdout.
type runFunc func(name string, args ...string) ([]byte, error)

func runTool(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func onPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// NewSender returns the sender for the running OS.
func NewSender() Sender {
	return platformSender(onPath, runTool)
}

// Platform is the GOOS the binary was built for.
func Platform() string { return runtime.GOOS }

// silentSender is used where no notification tool exists.
type silentSender struct{}

func (silentSender) Show(Message) (string, error) { return "", nil }
func (silentSender) Play(string) error            { return nil }
func (silentSender) CanShow() bool                { return false }
func (silentSender) CanPlay() bool                { return false }

var soundExtensions = []string{".aif", ".aiff", ".flac", ".m4a", ".mp3", ".ogg", ".wav"}

// CheckSound reports why path cannot be used as an alert sound.
// An empty path is fine and means the platform chime.
func CheckSound(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return err
	case info.IsDir():
		return fmt.Errorf("%s is a directory", path)
	}
	if ext := strings.ToLower(filepath.Ext(path)); !slices.Contains(soundExtensions, ext) {
		return fmt.Errorf("unsupported audio format %q", ext)
	}
	return nil
}
