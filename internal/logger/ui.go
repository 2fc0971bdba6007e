package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// UILogger prints like StdoutLogger until a spinner is started; while the
// spinner runs, messages replace the spinner text instead of scrolling.
type UILogger struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *uiSpinner
}

func NewUILogger() *UILogger {
	return &UILogger{out: os.Stdout}
}

// IsInteractive reports whether stdout is attached to a terminal.
// apply only animates its progress spinner when it is.
func IsInteractive() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func (l *UILogger) Logf(format string, args ...interface{}) {
	l.emit(fmt.Sprintf(format, args...))
}

func (l *UILogger) Log(msg string) {
	l.emit(msg + "\n")
}

func (l *UILogger) emit(text string) {
	l.mu.Lock()
	s := l.spinner
	l.mu.Unlock()
	if s != nil {
		s.Update(strings.ReplaceAll(strings.TrimSuffix(text, "\n"), "\n", " "))
		return
	}
	fmt.Fprint(l.out, text)
}

// StartSpinner starts a progress line. When stdout is not a terminal it
// returns a spinner that renders nothing.
func (l *UILogger) StartSpinner(text string) Spinner {
	if !IsInteractive() {
		return &noOpSpinner{}
	}
	l.mu.Lock()
	if l.spinner != nil {
		l.spinner.halt(false)
	}
	s := &uiSpinner{parent: l, text: text, done: make(chan struct{}), exited: make(chan struct{})}
	l.spinner = s
	l.mu.Unlock()
	go s.loop()
	return s
}

type uiSpinner struct {
	parent *UILogger
	mu     sync.Mutex
	text   string
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
	failed bool
}

var spinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

func (s *uiSpinner) loop() {
	defer close(s.exited)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	out := s.parent.out
	for i := 0; ; i++ {
		select {
		case <-s.done:
			s.mu.Lock()
			mark, text := "✓", s.text
			if s.failed {
				mark = "✗"
			}
			s.mu.Unlock()
			fmt.Fprintf(out, "\r\033[2K%s %s\n", mark, text)
			return
		case <-ticker.C:
			s.mu.Lock()
			text := s.text
			s.mu.Unlock()
			fmt.Fprintf(out, "\r\033[2K%c %s", spinnerFrames[i%len(spinnerFrames)], text)
		}
	}
}

func (s *uiSpinner) Update(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

func (s *uiSpinner) halt(failed bool) {
	s.once.Do(func() {
		s.mu.Lock()
		s.failed = failed
		s.mu.Unlock()
		close(s.done)
	})
}

// detach returns once the final line has been printed.
func (s *uiSpinner) detach(failed bool) {
	s.halt(failed)
	<-s.exited
	s.parent.mu.Lock()
	if s.parent.spinner == s {
		s.parent.spinner = nil
	}
	s.parent.mu.Unlock()
}

func (s *uiSpinner) Stop() { s.detach(false) }
func (s *uiSpinner) Fail() { s.detach(true) }
