package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/shenikar/zasahy_monitor/internal/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFlush_SavesCurrentSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockPersister(ctrl)
	s := newTestStore(t, persister)
	s.SetIncidents([]models.Incident{incident("A", models.StatusActive)})

	persister.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *models.Snapshot) error {
			assert.Equal(t, []string{"A"}, ids(snapshot.Incidents))
			assert.Equal(t, []models.NotificationFlag{{ID: "A", Read: false}}, snapshot.Notifications)
			return nil
		}).
		Times(1)

	require.NoError(t, s.Flush(context.Background()))
}

func TestFlush_ReturnsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockPersister(ctrl)
	s := newTestStore(t, persister)

	persister.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := s.Flush(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRun_WritesLatestSnapshotInBackground(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockPersister(ctrl)
	s := newTestStore(t, persister)

	saved := make(chan *models.Snapshot, 4)
	persister.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *models.Snapshot) error {
			saved <- snapshot
			return nil
		}).
		AnyTimes()

	s.SetIncidents([]models.Incident{incident("A", models.StatusActive)})
	s.AppendIncidents([]models.Incident{incident("B", models.StatusActive)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case snapshot := <-saved:
		// две мутации до запуска цикла схлопываются в одну запись
		assert.Equal(t, []string{"A", "B"}, ids(snapshot.Incidents))
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot was not persisted")
	}

	cancel()
	<-done
}

func TestRun_ReportsSaveErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockPersister(ctrl)
	s := newTestStore(t, persister)

	persister.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	s.AddIncident(incident("A", models.StatusActive))

	select {
	case err := <-s.Errors():
		assert.Contains(t, err.Error(), "redis down")
	case <-time.After(2 * time.Second):
		t.Fatal("save error was not reported")
	}

	cancel()
	<-done
}

func TestMutations_WithoutPersisterStayInMemory(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddIncident(incident("A", models.StatusActive))

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, 1, s.Len())
}
