package event

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
)

func newTestLogger(t *testing.T) *log.Logger {
	t.Helper()

	cfg := &model.Config{
		LogFolder:  filepath.Join(t.TempDir(), "logs"),
		CommandLog: "commands.log",
		ErrorLog:   "errors.log",
		InfoLog:    "info.log",
	}
	logger, err := log.NewLogger(cfg, log.LevelError)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	return logger
}

func TestPublishReachesSubscribers(t *testing.T) {
	em := NewEventManager(newTestLogger(t))

	received := make(chan Event, 1)
	em.Subscribe(Toast, func(e Event) {
		received <- e
	})

	em.Publish(Event{Type: Toast, Data: ToastData{Message: "halo", Severity: "info"}})

	select {
	case e := <-received:
		toast, ok := e.Data.(ToastData)
		require.True(t, ok)
		assert.Equal(t, "halo", toast.Message)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestPublishIgnoresOtherTypes(t *testing.T) {
	em := NewEventManager(newTestLogger(t))

	received := make(chan Event, 1)
	em.Subscribe(ScheduleAdded, func(e Event) {
		received <- e
	})

	em.Publish(Event{Type: ScheduleDeleted})

	select {
	case <-received:
		t.Fatal("handler should not receive events of other types")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPanicInHandlerIsRecovered(t *testing.T) {
	em := NewEventManager(newTestLogger(t))

	em.Subscribe(StateChanged, func(e Event) {
		panic("boom")
	})

	done := make(chan struct{})
	em.Subscribe(StateChanged, func(e Event) {
		close(done)
	})

	em.Publish(Event{Type: StateChanged})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler was not invoked")
	}
}
