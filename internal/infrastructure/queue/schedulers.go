package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"amana-bookstore/internal/config"
	cartModel "amana-bookstore/internal/domains/cart/model"
	"amana-bookstore/internal/shared"
	"amana-bookstore/pkg/logger"
)

// Scheduler owns the periodic cart maintenance jobs. Fragmentation repair
// runs hourly; stale-row purging runs once a day during low traffic.
type Scheduler struct {
	scheduler    *asynq.Scheduler
	workerConfig config.WorkerConfig
}

func NewScheduler(redisAddress string, workerConfig config.WorkerConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler:    scheduler,
		workerConfig: workerConfig,
	}
}

func (s *Scheduler) RegisterCartJobs() error {
	if err := s.registerCompactFragmentedJob(); err != nil {
		return err
	}

	if err := s.registerPurgeStaleJob(); err != nil {
		return err
	}

	return nil
}

// Compaction is cheap when there is nothing to do, so it runs hourly.
// Merge-on-read keeps views correct in between.
func (s *Scheduler) registerCompactFragmentedJob() error {
	payload, err := json.Marshal(cartModel.CompactFragmentedPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeCompactFragmentedCarts, payload)

	_, err = s.scheduler.Register(
		"0 * * * *", // hourly
		task,
		asynq.Queue(shared.QueueCart),
		asynq.MaxRetry(2),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("failed to register CompactFragmentedCarts job", err)
		return err
	}

	logger.Info("registered CompactFragmentedCarts: hourly", map[string]interface{}{})
	return nil
}

// Purging runs daily at 3 AM, off-peak for the storefront.
func (s *Scheduler) registerPurgeStaleJob() error {
	payload, err := json.Marshal(cartModel.PurgeStaleCartItemsPayload{
		OlderThanDays: s.workerConfig.CartRetentionDays,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePurgeStaleCartItems, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *", // daily at 3 AM
		task,
		asynq.Queue(shared.QueueCart),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("failed to register PurgeStaleCartItems job", err)
		return err
	}

	logger.Info("registered PurgeStaleCartItems: daily at 3 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
