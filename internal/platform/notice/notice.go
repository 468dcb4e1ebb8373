package notice

import (
	"fmt"
	"io"
	"sync"

	"github.com/gen2brain/beeep"
)

// Notifier surfaces non-fatal, user-visible notices.
type Notifier interface {
	Notify(title, message string) error
}

// Writer prints notices as single lines.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Notify(title, message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintf(w.out, "notice: %s: %s\n", title, message)
	return err
}

// Desktop raises an OS notification.
type Desktop struct{}

func NewDesktop(appName string) Desktop {
	beeep.AppName = appName
	return Desktop{}
}

func (Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Multi fans a notice out to every notifier and returns the first error.
type Multi []Notifier

func (m Multi) Notify(title, message string) error {
	var first error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(title, message); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Recorder keeps notices in memory; the TUI reads the latest one into its status bar.
type Recorder struct {
	mu      sync.Mutex
	notices []string
}

func (r *Recorder) Notify(title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, title+": "+message)
	return nil
}

func (r *Recorder) Notices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.notices...)
}

func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return ""
	}
	return r.notices[len(r.notices)-1]
}
