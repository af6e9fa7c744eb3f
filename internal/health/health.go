// Package health checks that the desktop tools and configuration a writing
// session depends on are available.
package health

import (
	"fmt"
	"strings"

	"github.com/wordpace/wordpace/internal/config"
	"github.com/wordpace/wordpace/internal/notify"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
	// Optional checks warn instead of failing the report
	Optional bool
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// ToolChecker reports which notification tools the platform has.
// notify.Sender satisfies it.
type ToolChecker interface {
	CanShow() bool
	CanPlay() bool
}

// add records a check and folds it into the overall result
func (r *HealthReport) add(check CheckResult) {
	r.Checks = append(r.Checks, check)
	if !check.Passed && !check.Optional {
		r.Passed = false
	}
}

// RunHealthChecks runs all health checks and returns a report
func RunHealthChecks(checker ToolChecker, configPath string) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0, 3),
		Passed: true,
	}

	report.add(CheckConfig(configPath))
	report.add(CheckNotifications(checker, notify.Platform()))
	report.add(CheckSound(checker, notify.Platform()))

	return report
}

// CheckConfig checks that configuration loads and validates
func CheckConfig(configPath string) CheckResult {
	if _, err := config.Load(configPath); err != nil {
		return CheckResult{
			Name:    "Configuration",
			Passed:  false,
			Message: fmt.Sprintf("Configuration invalid: %v", err),
		}
	}

	return CheckResult{
		Name:    "Configuration",
		Passed:  true,
		Message: "Configuration valid",
	}
}

// CheckNotifications checks that the desktop notification tool is available
func CheckNotifications(checker ToolChecker, platform string) CheckResult {
	if !checker.CanShow() {
		return CheckResult{
			Name:    "Desktop notifications",
			Passed:  false,
			Message: fmt.Sprintf("%s not found in PATH (run with --no-notify to skip notifications)", visualTool(platform)),
		}
	}

	return CheckResult{
		Name:    "Desktop notifications",
		Passed:  true,
		Message: visualTool(platform) + " found",
	}
}

// CheckSound checks that the sound player is available
func CheckSound(checker ToolChecker, platform string) CheckResult {
	if !checker.CanPlay() {
		return CheckResult{
			Name:     "Notification sound",
			Passed:   false,
			Message:  fmt.Sprintf("%s not found in PATH (only needed when notifications.type is sound or both)", soundTool(platform)),
			Optional: true,
		}
	}

	return CheckResult{
		Name:    "Notification sound",
		Passed:  true,
		Message: soundTool(platform) + " found",
	}
}

// visualTool names the notification tool used on platform
func visualTool(platform string) string {
	switch platform {
	case "linux":
		return "notify-send"
	case "darwin":
		return "osascript"
	case "windows":
		return "powershell"
	default:
		return "notification tool"
	}
}

// soundTool names the audio player used on platform
func soundTool(platform string) string {
	switch platform {
	case "linux":
		return "paplay"
	case "darwin":
		return "afplay"
	case "windows":
		return "powershell"
	default:
		return "sound player"
	}
}

// FormatReport renders one line per check: ✓ passed, ! optional miss,
// ✗ failure.
func FormatReport(report *HealthReport) string {
	var b strings.Builder
	for _, c := range report.Checks {
		switch {
		case c.Passed:
			fmt.Fprintf(&b, "✓ %s: %s\n", c.Name, c.Message)
		case c.Optional:
			fmt.Fprintf(&b, "! Warning: %s\n", c.Message)
		default:
			fmt.Fprintf(&b, "✗ Error: %s\n", c.Message)
		}
	}
	return b.String()
}
