package store

import (
	"context"
	"fmt"

	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/sirupsen/logrus"
)

// schedulePersistLocked ставит текущий снапшот в очередь на запись.
// В очереди держится только последний снапшот. Вызывается под s.mu.
func (s *Store) schedulePersistLocked() {
	if s.persister == nil {
		return
	}
	snapshot := s.snapshotLocked()
	for {
		select {
		case s.pending <- snapshot:
			return
		default:
			select {
			case <-s.pending:
			default:
			}
		}
	}
}

// Run записывает снапшоты в фоне, пока не отменен ctx.
// Перед выходом дописывает последний незаписанный снапшот.
func (s *Store) Run(ctx context.Context) {
	if s.persister == nil {
		return
	}
	log := s.logger.WithFields(logrus.Fields{"service": "store", "method": "Run"})
	log.Info("Starting store persistence loop...")
	for {
		select {
		case <-ctx.Done():
			select {
			case snapshot := <-s.pending:
				saveCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
				s.save(saveCtx, snapshot)
				cancel()
			default:
			}
			log.Info("Stopping store persistence loop.")
			return
		case snapshot := <-s.pending:
			saveCtx, cancel := context.WithTimeout(ctx, persistTimeout)
			s.save(saveCtx, snapshot)
			cancel()
		}
	}
}

// Errors отдает ошибки фоновой записи. Если никто не читает, лишние ошибки отбрасываются.
func (s *Store) Errors() <-chan error {
	return s.errs
}

// Flush синхронно записывает текущее состояние
func (s *Store) Flush(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	select {
	case <-s.pending:
	default:
	}
	if err := s.persister.Save(ctx, s.Snapshot()); err != nil {
		return fmt.Errorf("store: could not save snapshot: %w", err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, snapshot *models.Snapshot) {
	if err := s.persister.Save(ctx, snapshot); err != nil {
		err = fmt.Errorf("store: could not save snapshot: %w", err)
		s.logger.WithField("service", "store").WithError(err).Error("Failed to persist store snapshot")
		select {
		case s.errs <- err:
		default:
		}
		return
	}
	s.logger.WithFields(logrus.Fields{
		"service":   "store",
		"incidents": len(snapshot.Incidents),
	}).Debug("Store snapshot persisted")
}
