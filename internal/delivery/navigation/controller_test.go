package navigation

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockusecase "textura/internal/mocks/usecase"
)

// journal records flow transitions across both flows in order.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(entry string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
}

func (j *journal) snapshot() []string {
	j.mu.Lock()
	defer j.mu.Unlock()

	return append([]string(nil), j.entries...)
}

type recordingFlow struct {
	name string
	log  *journal
}

func (f *recordingFlow) Start()  { f.log.add(f.name + ".start") }
func (f *recordingFlow) Finish() { f.log.add(f.name + ".finish") }

func newTestController(t *testing.T) (*Controller, *mockusecase.MockAuthUsecase, *journal) {
	t.Helper()

	engine := mockusecase.NewMockAuthUsecase(t)
	log := &journal{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := NewController(engine,
		&recordingFlow{name: "auth", log: log},
		&recordingFlow{name: "main", log: log},
		logger,
	)

	return c, engine, log
}

func TestController_StartShowsAuth(t *testing.T) {
	c, _, log := newTestController(t)

	assert.Equal(t, RouteNone, c.Route())

	c.Start()
	c.Start()

	assert.Equal(t, RouteAuth, c.Route())
	assert.Equal(t, []string{"auth.start"}, log.snapshot())
}

func TestController_Apply(t *testing.T) {
	c, _, log := newTestController(t)
	c.Start()

	c.Apply(false)
	assert.Equal(t, RouteAuth, c.Route())

	c.Apply(true)
	assert.Equal(t, RouteMain, c.Route())

	c.Apply(true)
	c.Apply(false)
	assert.Equal(t, RouteAuth, c.Route())

	assert.Equal(t, []string{
		"auth.start",
		"auth.finish", "main.start",
		"main.finish", "auth.start",
	}, log.snapshot())
}

func TestController_ApplyBeforeStart(t *testing.T) {
	c, _, log := newTestController(t)

	c.Apply(true)

	assert.Equal(t, RouteMain, c.Route())
	assert.Equal(t, []string{"main.start"}, log.snapshot())
}

func TestController_RunFollowsEngine(t *testing.T) {
	c, engine, log := newTestController(t)

	changes := make(chan bool, 1)
	engine.EXPECT().AuthenticatedChanges(mock.Anything).Return(changes)

	done := make(chan error, 1)
	go func() {
		done <- c.Run(context.Background())
	}()

	changes <- false
	changes <- true
	require.Eventually(t, func() bool { return c.Route() == RouteMain }, time.Second, 5*time.Millisecond)

	changes <- false
	require.Eventually(t, func() bool { return c.Route() == RouteAuth }, time.Second, 5*time.Millisecond)

	close(changes)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the engine closed")
	}

	assert.Equal(t, []string{
		"auth.start",
		"auth.finish", "main.start",
		"main.finish", "auth.start",
	}, log.snapshot())
}

func TestController_RunSeededAuthenticatedSkipsAuth(t *testing.T) {
	c, engine, log := newTestController(t)

	changes := make(chan bool, 1)
	changes <- true
	close(changes)
	engine.EXPECT().AuthenticatedChanges(mock.Anything).Return(changes)

	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, RouteMain, c.Route())
	assert.Equal(t, []string{"main.start"}, log.snapshot())
}

func TestController_RunClosedEngineShowsAuth(t *testing.T) {
	c, engine, log := newTestController(t)

	changes := make(chan bool)
	close(changes)
	engine.EXPECT().AuthenticatedChanges(mock.Anything).Return(changes)

	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, RouteAuth, c.Route())
	assert.Equal(t, []string{"auth.start"}, log.snapshot())
}

func TestController_ServeRunsController(t *testing.T) {
	c, engine, log := newTestController(t)

	changes := make(chan bool, 1)
	changes <- true
	close(changes)
	engine.EXPECT().AuthenticatedChanges(mock.Anything).Return(changes)

	require.NoError(t, c.Serve(context.Background()))
	assert.Equal(t, RouteMain, c.Route())
	assert.Equal(t, []string{"main.start"}, log.snapshot())
}
