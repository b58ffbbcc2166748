package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lexkit/internal/driver"
	"lexkit/internal/ui"
)

type tokenizeOutcome struct {
	result *driver.Result
	err    error
}

// runTokenizeWithUI runs the directory scan while the progress view renders
// on stderr, so stdout stays clean for the token output.
func runTokenizeWithUI(ctx context.Context, title string, files []string, path string, opts driver.Options) (*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan tokenizeOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Observer = driver.ChannelObserver(events)
		res, err := driver.TokenizeDir(ctx, path, runOpts)
		close(events)
		outcomeCh <- tokenizeOutcome{result: res, err: err}
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// the view may quit early; keep workers from blocking on a full channel
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
