//go:build windows

package notify

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// toastScript shows a ToastText02 toast. Toasts with the same tag and
// group replace each other.
const toastScript = `
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
$xml = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$lines = $xml.GetElementsByTagName('text')
$lines.Item(0).AppendChild($xml.CreateTextNode('%s')) | Out-Null
$lines.Item(1).AppendChild($xml.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($xml)
$toast.Tag = '%s'
$toast.Group = '%s'
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('%s').Show($toast)
`

const playScript = `(New-Object System.Media.SoundPlayer '%s').PlaySync()`

var toastSeq atomic.Int64

type windowsSender struct {
	run        runFunc
	powershell bool
}

func platformSender(has func(string) bool, run runFunc) Sender {
	return &windowsSender{run: run, powershell: has("powershell")}
}

func (s *windowsSender) script(body string) error {
	_, err := s.run("powershell", "-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", body)
	return err
}

func (s *windowsSender) Show(m Message) (string, error) {
	if !s.powershell {
		return "", nil
	}
	tag := m.Replaces
	if tag == "" {
		tag = fmt.Sprintf("%s-%d", appName, toastSeq.Add(1))
	}
	err := s.script(fmt.Sprintf(toastScript, psQuote(m.Title), psQuote(m.Body), tag, appName, appName))
	if err != nil {
		return "", err
	}
	return tag, nil
}

func (s *windowsSender) Play(soundFile string) error {
	if !s.powershell {
		return nil
	}
	if soundFile == "" {
		return s.script("[Console]::Beep(800, 200)")
	}
	return s.script(fmt.Sprintf(playScript, psQuote(soundFile)))
}

func (s *windowsSender) CanShow() bool { return s.powershell }
func (s *windowsSender) CanPlay() bool { return s.powershell }

// psQuoter doubles every character PowerShell reads as a single quote,
// including the typographic ones. Nothing else is special inside '...'.
var psQuoter = strings.NewReplacer("'", "''", "\u2018", "\u2018\u2018", "\u2019", "\u2019\u2019", "\u201A", "\u201A\u201A", "\u201B", "\u201B\u201B")

// psQuote escapes s for a single-quoted PowerShell string.
func psQuote(s string) string {
	return psQuoter.Replace(s)
}
