// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/luxfi/crowdfund/pkg/constants"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Spinner animates a description on a terminal while a blocking call runs.
// On anything but a terminal it draws nothing.
type Spinner struct {
	bar  *progressbar.ProgressBar
	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// IsTerminal reports whether [w] is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StartSpinner starts a spinner on [w] when it is a terminal.
func StartSpinner(w io.Writer, description string) *Spinner {
	return startSpinner(w, description, IsTerminal(w), constants.SpinnerTickEvery)
}

func startSpinner(w io.Writer, description string, enabled bool, tick time.Duration) *Spinner {
	s := &Spinner{stop: make(chan struct{})}
	if !enabled {
		return s
	}
	s.bar = progressbar.NewOptions(
		-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
	)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = s.bar.Add(1)
			case <-s.stop:
				return
			}
		}
	}()
	return s
}

// Stop halts the animation and clears the line. It is safe to call more
// than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		s.wg.Wait()
		if s.bar != nil {
			_ = s.bar.Finish()
		}
	})
}
