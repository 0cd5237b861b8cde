package cron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler(quietLogger())
	var order []string
	s.AddJob("first", time.Hour, func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	s.AddJob("failing", time.Hour, func(context.Context) error {
		order = append(order, "failing")
		return errors.New("boom")
	})
	s.AddJob("last", time.Hour, func(context.Context) error {
		order = append(order, "last")
		return nil
	})

	// Act
	s.RunOnce(context.Background())

	// Assert
	assert.Equal(t, []string{"first", "failing", "last"}, order)
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler(quietLogger())
	var runs atomic.Int32
	done := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(context.Context) error {
		runs.Add(1)
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	})

	// Act
	s.Start(context.Background())
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
	s.Stop()

	// Assert
	assert.Equal(t, int32(1), runs.Load())
}
