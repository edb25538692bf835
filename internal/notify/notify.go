// Package notify delivers user-facing success and error messages.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Notifier receives user-visible outcomes of an action.
type Notifier interface {
	Success(title, msg string)
	Error(title, msg string)
}

// Level distinguishes notification kinds.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one delivered message.
type Notification struct {
	Level Level
	Title string
	Msg   string
}

var (
	successColor = lipgloss.AdaptiveColor{Light: "#4E790B", Dark: "#C1F11D"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}
)

// Terminal writes one styled line per notification.
type Terminal struct {
	Out     io.Writer
	NoColor bool
}

func (t *Terminal) Success(title, msg string) { t.write("✓", successColor, title, msg) }
func (t *Terminal) Error(title, msg string)   { t.write("✗", errorColor, title, msg) }

func (t *Terminal) write(icon string, color lipgloss.AdaptiveColor, title, msg string) {
	head := icon + " " + title + ":"
	if !t.NoColor {
		head = lipgloss.NewStyle().Foreground(color).Bold(true).Render(head)
	}
	fmt.Fprintf(t.Out, "%s %s\n", head, msg)
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Success(title, msg string) { r.add(Notification{Level: LevelSuccess, Title: title, Msg: msg}) }
func (r *Recorder) Error(title, msg string)   { r.add(Notification{Level: LevelError, Title: title, Msg: msg}) }

func (r *Recorder) add(n Notification) {
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
