package workers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
	"warehouse-portal/metrics"
	"warehouse-portal/mocks"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(log, 50*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(ctx)
		close(done)
	}()
	<-done

	req.GreaterOrEqual(calls.Load(), int32(2))
}

func TestSupervisor_RestartOnError(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	// Fails twice then finishes its work
	gomock.InOrder(
		workerMock.EXPECT().Run(gomock.Any()).Return(errors.New("storage unavailable")).Times(2),
		workerMock.EXPECT().Run(gomock.Any()).Return(nil).Times(1),
	)

	sup := NewSupervisor(log, 10*time.Millisecond)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Supervisor should have stopped after the worker finished")
	}
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)

	sup := NewSupervisor(log, 0)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
		// Then the supervisor saw a success and stopped
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_Stop(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)
	started := make(chan struct{})
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return nil
		}).
		Times(1)

	sup := NewSupervisor(log, 0)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()
	<-started
	sup.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped its workers")
	}
}

func TestValueLogGCWorker(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	t.Run("Should finish at once on an in-memory database", func(t *testing.T) {
		req := require.New(t)
		db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
		req.NoError(err)
		defer db.Close()

		req.NoError(NewValueLogGCWorker(log, db, time.Millisecond, 0.5).Run(context.Background()))
	})

	t.Run("Should run until canceled on disk", func(t *testing.T) {
		req := require.New(t)
		db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
		req.NoError(err)
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		req.NoError(NewValueLogGCWorker(log, db, 10*time.Millisecond, 0.5).Run(ctx))
	})
}

func TestHTTPServerWorker_ShutsDownOnCancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	worker := NewHTTPServerWorker(log, server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- worker.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-result:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("HTTP server worker should stop on cancel")
	}
}

func TestProcessStatsWorker_PublishesGauges(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req.NoError(NewProcessStatsWorker(log, 10*time.Millisecond).Run(ctx))
	req.Greater(testutil.ToFloat64(metrics.PortalRSSBytes), float64(0))
}
