package poller

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/zasahy_monitor/internal/config"
	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/shenikar/zasahy_monitor/internal/source"
	"github.com/shenikar/zasahy_monitor/internal/store"
	"github.com/shenikar/zasahy_monitor/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Виды загрузок. Одновременно выполняется не больше одной загрузки каждого вида.
const (
	kindRefresh  = "refresh"
	kindLoadMore = "load-more"
	kindPollNew  = "poll-new"
)

// Source определяет контракт удаленного источника выездов
type Source interface {
	ListIncidents(ctx context.Context, limit, offset int) ([]source.RawIncident, error)
	NewIncidents(ctx context.Context) ([]source.RawIncident, error)
}

// Poller периодически сверяет стор с удаленным источником
type Poller struct {
	source    Source
	mapper    *source.Mapper
	store     *store.Store
	publisher webhook.NotificationPublisher
	logger    *logrus.Logger
	cfg       *config.Config

	cron       *cron.Cron
	group      singleflight.Group
	foreground atomic.Bool
	now        func() time.Time

	mu      sync.Mutex
	baseCtx context.Context
	stopped bool
	// wg учитывает загрузки, запущенные вне cron
	wg sync.WaitGroup
}

// NewPoller создает Poller. publisher может быть nil, тогда уведомления не отправляются.
func NewPoller(src Source, mapper *source.Mapper, st *store.Store, publisher webhook.NotificationPublisher, logger *logrus.Logger, cfg *config.Config) *Poller {
	p := &Poller{
		source:    src,
		mapper:    mapper,
		store:     st,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
		),
		now:     time.Now,
		baseCtx: context.Background(),
	}
	p.foreground.Store(true)
	return p
}

// Start сразу выполняет полную загрузку и запускает периодический опрос
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	p.baseCtx = ctx
	p.mu.Unlock()

	log := p.logger.WithFields(logrus.Fields{
		"service":  "poller",
		"method":   "Start",
		"interval": p.cfg.PollInterval.String(),
		"mode":     p.cfg.PollMode,
	})

	if _, err := p.cron.AddFunc(fmt.Sprintf("@every %s", p.cfg.PollInterval), func() { p.Tick(ctx) }); err != nil {
		return fmt.Errorf("poller: could not schedule poll job: %w", err)
	}
	// график смен пересчитывается в начале каждого месяца
	shiftSpec := fmt.Sprintf("CRON_TZ=%s 0 0 1 * *", p.location().String())
	if _, err := p.cron.AddFunc(shiftSpec, func() { p.store.RefreshShifts(p.now().In(p.location())) }); err != nil {
		return fmt.Errorf("poller: could not schedule shift job: %w", err)
	}

	p.spawn(func() {
		if err := p.Refresh(ctx); err != nil {
			log.WithError(err).Warn("Initial fetch failed")
		}
	})

	p.cron.Start()
	log.Info("Poller started")
	return nil
}

func (p *Poller) location() *time.Location {
	if p.cfg.SourceLocation != nil {
		return p.cfg.SourceLocation
	}
	return time.UTC
}

// Stop останавливает таймеры и дожидается запущенных загрузок.
// После Stop новые загрузки в фоне не запускаются.
func (p *Poller) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()

	<-p.cron.Stop().Done()
	p.wg.Wait()
	p.logger.WithField("service", "poller").Info("Poller stopped")
}

// spawn запускает fn в горутине, которую дождется Stop. false если поллер уже остановлен.
func (p *Poller) spawn(fn func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return false
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		fn()
	}()
	return true
}

// Tick - одна итерация периодического опроса в выбранном режиме
func (p *Poller) Tick(ctx context.Context) {
	log := p.logger.WithFields(logrus.Fields{"service": "poller", "method": "Tick"})

	var err error
	if p.cfg.PollMode == config.PollFull {
		err = p.Refresh(ctx)
	} else {
		_, err = p.PollNew(ctx)
	}
	if err != nil {
		log.WithError(err).Warn("Scheduled fetch failed")
	}
}

// SetForeground сообщает о смене состояния приложения. Переход из фона в активное
// состояние запускает внеочередные PollNew и Refresh. Возвращает true, если загрузка была запущена.
func (p *Poller) SetForeground(active bool) bool {
	wasActive := p.foreground.Swap(active)
	if !active || wasActive {
		return false
	}

	p.mu.Lock()
	ctx := p.baseCtx
	p.mu.Unlock()

	p.logger.WithField("service", "poller").Info("App returned to foreground, fetching")
	return p.spawn(func() { p.resume(ctx) })
}

// resume сначала забирает новые выезды (с уведомлениями), затем обновляет первую страницу
func (p *Poller) resume(ctx context.Context) {
	log := p.logger.WithFields(logrus.Fields{"service": "poller", "method": "resume"})
	if _, err := p.PollNew(ctx); err != nil {
		log.WithError(err).Warn("Poll after resume failed")
	}
	if err := p.Refresh(ctx); err != nil {
		log.WithError(err).Warn("Refresh after resume failed")
	}
}

// Foreground сообщает, активно ли приложение
func (p *Poller) Foreground() bool {
	return p.foreground.Load()
}

// Refresh загружает первую страницу и заменяет весь список
func (p *Poller) Refresh(ctx context.Context) error {
	_, err, shared := p.group.Do(kindRefresh, func() (any, error) {
		return nil, p.refresh(context.WithoutCancel(ctx))
	})
	if shared {
		p.logger.WithFields(logrus.Fields{"service": "poller", "kind": kindRefresh}).Debug("Joined in-flight fetch")
	}
	return err
}

// LoadMore загружает следующую страницу и дописывает ее в конец списка
func (p *Poller) LoadMore(ctx context.Context) ([]models.Incident, error) {
	res, err, _ := p.group.Do(kindLoadMore, func() (any, error) {
		return p.loadMore(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return res.([]models.Incident), nil
}

// PollNew забирает ленту новых выездов и добавляет те, которых еще нет в сторе
func (p *Poller) PollNew(ctx context.Context) ([]models.Incident, error) {
	res, err, _ := p.group.Do(kindPollNew, func() (any, error) {
		return p.pollNew(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return res.([]models.Incident), nil
}

func (p *Poller) refresh(ctx context.Context) error {
	log := p.logger.WithFields(logrus.Fields{
		"service":   "poller",
		"method":    "Refresh",
		"page_size": p.cfg.PageSize,
	})
	p.store.ClearFetchError()

	raws, err := p.source.ListIncidents(ctx, p.cfg.PageSize, 0)
	if err != nil {
		return p.fail(log, err)
	}
	incidents, err := p.mapper.MapAll(raws)
	if err != nil {
		return p.fail(log, err)
	}

	p.store.SetIncidents(incidents)
	log.WithField("count", p.store.Len()).Info("Incidents refreshed")
	return nil
}

func (p *Poller) loadMore(ctx context.Context) ([]models.Incident, error) {
	generation := p.store.Generation()
	// локальные тестовые инциденты в удаленном списке отсутствуют
	offset := p.store.SourceLen()
	log := p.logger.WithFields(logrus.Fields{
		"service": "poller",
		"method":  "LoadMore",
		"offset":  offset,
	})
	p.store.ClearFetchError()

	raws, err := p.source.ListIncidents(ctx, p.cfg.PageSize, offset)
	if err != nil {
		return nil, p.fail(log, err)
	}
	incidents, err := p.mapper.MapAll(raws)
	if err != nil {
		return nil, p.fail(log, err)
	}

	appended, current := p.store.AppendIncidentsIfCurrent(generation, incidents)
	if !current {
		log.Info("List was replaced while loading, discarding stale page")
		return []models.Incident{}, nil
	}
	log.WithField("count", len(appended)).Info("Next page appended")
	return append([]models.Incident{}, appended...), nil
}

func (p *Poller) pollNew(ctx context.Context) ([]models.Incident, error) {
	log := p.logger.WithFields(logrus.Fields{"service": "poller", "method": "PollNew"})
	p.store.ClearFetchError()

	raws, err := p.source.NewIncidents(ctx)
	if err != nil {
		return nil, p.fail(log, err)
	}
	incidents, err := p.mapper.MapAll(raws)
	if err != nil {
		return nil, p.fail(log, err)
	}

	fresh := p.store.MergeNew(incidents)
	if len(fresh) == 0 {
		log.Debug("No new incidents")
		return []models.Incident{}, nil
	}
	log.WithField("count", len(fresh)).Info("New incidents merged")

	p.notify(ctx, fresh)
	return fresh, nil
}

// notify публикует по уведомлению на каждый новый выезд, только пока приложение активно
func (p *Poller) notify(ctx context.Context, fresh []models.Incident) {
	if p.publisher == nil || !p.foreground.Load() {
		return
	}
	settings := p.store.NotificationSettings()
	now := p.now()
	for _, incident := range fresh {
		if !store.MatchesNotification(incident, settings) {
			continue
		}
		if err := p.publisher.Publish(ctx, webhook.NewNotificationEvent(incident, now)); err != nil {
			p.logger.WithFields(logrus.Fields{
				"service":     "poller",
				"incident_id": incident.ID,
			}).WithError(err).Error("Failed to publish notification")
		}
	}
}

// fail кладет сообщение об ошибке в стор. При самой первой загрузке
// выставляется пустой список, чтобы отличать "нет данных" от "еще не загружено".
func (p *Poller) fail(log *logrus.Entry, err error) error {
	log.WithError(err).Warn("Fetch failed")
	p.store.SetFetchError(FetchErrorMessage(err))
	p.store.SetEmptyIfNotLoaded()
	return fmt.Errorf("poller: fetch failed: %w", err)
}
