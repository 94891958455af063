// Package notify is the fire-and-forget boundary for sounds, haptics and
// the share clipboard. The game machine invokes it at fixed lifecycle
// points and never waits on it.
package notify

//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/salex1993/Who-Am-I-Bible-Riddles/internal/notify Notifier

// Notifier receives gameplay cues
type Notifier interface {
	// NotifyCorrect fires after a correct answer
	NotifyCorrect()

	// NotifyWrong fires after a wrong answer or timeout
	NotifyWrong()

	// NotifyTransition fires when a party turn hand-off is shown
	NotifyTransition()

	// CopyShareText places the share text on the clipboard
	CopyShareText(text string)
}

// NoopNotifier discards every cue
type NoopNotifier struct{}

// NewNoop creates a notifier that does nothing
func NewNoop() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) NotifyCorrect()            {}
func (n *NoopNotifier) NotifyWrong()              {}
func (n *NoopNotifier) NotifyTransition()         {}
func (n *NoopNotifier) CopyShareText(text string) {}
