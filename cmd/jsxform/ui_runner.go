package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jsxform/internal/driver"
	"jsxform/internal/ui"
)

type processOutcome struct {
	results []driver.Result
	err     error
}

func runWithUI(ctx context.Context, title string, files []string, jobs int, opts driver.Options) ([]driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan processOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.ProcessFiles(ctx, files, jobs, optsCopy)
		outcomeCh <- processOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
