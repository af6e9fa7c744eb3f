package notify

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"
)

// dispatchTimeout bounds how long a single OS notification call may block polling.
const dispatchTimeout = 5 * time.Second

// ErrDispatchTimeout is returned when the OS notification tool does not return in time.
var ErrDispatchTimeout = errors.New("notification timed out")

// Handler dispatches live progress updates and break alerts according to
// configuration. A disabled handler accepts every call and does nothing.
type Handler struct {
	config      Config
	sender      Sender
	logger      *slog.Logger
	timeout     time.Duration
	ci          func() bool
	interactive func() bool
}

// NewHandler creates a handler using the sender for the current OS.
func NewHandler(config Config, logger *slog.Logger) *Handler {
	return NewHandlerWithSender(config, NewSender(), logger)
}

// NewHandlerWithSender creates a handler with a custom sender (for testing).
func NewHandlerWithSender(config Config, sender Sender, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		config:      config,
		sender:      sender,
		logger:      logger.With("component", "notify"),
		timeout:     dispatchTimeout,
		ci:          isCI,
		interactive: isInteractive,
	}
}

// Config returns the handler's notification configuration
func (h *Handler) Config() Config {
	return h.config
}

// isEnabled checks if notifications should be sent.
// Returns false if notifications are disabled, running in CI, or non-interactive.
func (h *Handler) isEnabled() bool {
	if !h.config.Enabled {
		return false
	}
	if h.ci() {
		return false
	}
	return h.interactive()
}

// isCI checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
		"TF_BUILD",            // Azure DevOps
		"BITBUCKET_PIPELINES", // Bitbucket
		"CODEBUILD_BUILD_ID",  // AWS CodeBuild
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// isInteractive checks if stdout, stderr, or stdin is attached to a terminal.
func isInteractive() bool {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return true
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// dispatch runs send on its own goroutine and waits at most h.timeout.
// A timed out call keeps running in the background; its result is dropped.
func (h *Handler) dispatch(send func() (string, error)) (string, error) {
	type result struct {
		id  string
		err error
	}
	done := make(chan result, 1)
	go func() {
		id, err := send()
		done <- result{id: id, err: err}
	}()

	timer := time.NewTimer(h.timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		return r.id, r.err
	case <-timer.C:
		return "", ErrDispatchTimeout
	}
}

// Live shows the session's progress notification. The error is returned so
// the caller can treat a failing notification surface as fatal at startup.
func (h *Handler) Live(title, body string) (*LiveNotification, error) {
	live := &LiveNotification{handler: h, title: title, body: body}
	if !h.isEnabled() {
		return live, nil
	}

	live.enabled = true
	m := Message{Title: title, Body: body}
	id, err := h.dispatch(func() (string, error) { return h.sender.Show(m) })
	if err != nil {
		return nil, err
	}
	live.id = id
	h.logger.Debug("live notification created", "id", id)
	return live, nil
}

// Alert fires a one-shot break notification. Failures are logged and dropped.
func (h *Handler) Alert(title, message string) {
	if !h.isEnabled() || !h.config.OnBreak {
		return
	}

	delivery := h.config.Type
	if !delivery.Valid() {
		delivery = DeliveryVisual
	}
	if delivery.visual() {
		m := Message{Title: title, Body: message, Urgent: true}
		if _, err := h.dispatch(func() (string, error) { return h.sender.Show(m) }); err != nil {
			h.logger.Debug("alert failed", "title", title, "error", err)
		}
	}
	if delivery.sound() {
		_, err := h.dispatch(func() (string, error) { return "", h.sender.Play(h.config.SoundFile) })
		if err != nil {
			h.logger.Debug("alert sound failed", "error", err)
		}
	}
}

// LiveNotification is the single progress notification of a session.
// It is not safe for concurrent use.
type LiveNotification struct {
	handler *Handler
	enabled bool
	id      string
	title   string
	body    string
}

// Update replaces the notification's title and body.
func (l *LiveNotification) Update(title, body string) error {
	l.title = title
	l.body = body
	if !l.enabled || !l.handler.config.LiveUpdates {
		return nil
	}

	m := Message{Title: title, Body: body, Replaces: l.id}
	id, err := l.handler.dispatch(func() (string, error) { return l.handler.sender.Show(m) })
	if err != nil {
		return err
	}
	if id != "" {
		l.id = id
	}
	return nil
}

// Title returns the most recent title.
func (l *LiveNotification) Title() string { return l.title }

// Body returns the most recent body.
func (l *LiveNotification) Body() string { return l.body }

// ID returns the OS notification ID, empty if the platform has none.
func (l *LiveNotification) ID() string { return l.id }
