package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// spinner provides a simple text-based progress indicator on out.
type spinner struct {
	message string
	out     io.Writer
	stop    chan bool
	done    chan bool
	mu      sync.Mutex
	active  bool
}

func newSpinner(out io.Writer, message string) (s *spinner) {
	s = &spinner{
		message: message,
		out:     out,
		stop:    make(chan bool),
		done:    make(chan bool),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		chars := []string{"|", "/", "-", "\\"}
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		fmt.Fprintf(s.out, "%s ", s.message)
		for {
			select {
			case <-s.stop:
				fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
				s.done <- true
				return
			case <-ticker.C:
				fmt.Fprintf(s.out, "\r%s %s", s.message, chars[i%len(chars)])
				i++
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.stop <- true
	<-s.done

	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// withSpinner runs fn behind a spinner unless verbose output is on, in which
// case the message is printed once.
func withSpinner(out io.Writer, message string, fn func() error) (err error) {
	if getVerbose() {
		fmt.Fprintln(out, message)
		err = fn()
		return err
	}

	sp := newSpinner(out, message)
	sp.start()
	err = fn()
	sp.stopSpinner()

	return err
}
