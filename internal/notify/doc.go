// Package notify shows wordpace progress in the desktop notification area.
//
// A session owns one live notification that is replaced in place on every
// poll, plus one-shot alerts when a break starts. Notifications go through
// the native OS tools via os/exec, so the binary needs no CGO.
//
// # Platform Support
//
//   - Linux: notify-send (--print-id/--replace-id for live updates), paplay for sound
//   - macOS: osascript for notifications (re-posted on update), afplay for sound
//   - Windows: PowerShell toasts tagged so updates replace the previous toast
//
// # Usage
//
//	handler := notify.NewHandler(notify.DefaultConfig(), logger)
//	live, err := handler.Live("Minute 0:00.00", "0 words\n0.00 wpm")
//	...
//	_ = live.Update("Minute 1:00.00", "15 words\n15.00 wpm")
//	handler.Alert("Nice work, shake your legs!", "Back in 5 minutes")
package notify
