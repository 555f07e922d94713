package cronjobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const warmupText = "I am so happy today!"

// Warmer is anything that can be pinged with a short text so a hosted
// model stays loaded.
type Warmer interface {
	Warm(ctx context.Context, text string) error
}

// WarmerFunc adapts a function to Warmer.
type WarmerFunc func(ctx context.Context, text string) error

func (f WarmerFunc) Warm(ctx context.Context, text string) error { return f(ctx, text) }

// WarmUp calls every warmer once, logging failures.
func WarmUp(ctx context.Context, log logrus.FieldLogger, warmers map[string]Warmer) {
	for name, w := range warmers {
		start := time.Now()
		if err := w.Warm(ctx, warmupText); err != nil {
			log.WithError(err).WithField("model", name).Warn("warm-up failed")
			continue
		}
		log.WithFields(logrus.Fields{
			"model":    name,
			"duration": time.Since(start).String(),
		}).Debug("warm-up done")
	}
}

// InitCronJobs schedules WarmUp on schedule and starts the scheduler. An
// empty schedule returns a nil scheduler.
func InitCronJobs(schedule string, timeout time.Duration, log logrus.FieldLogger, warmers map[string]Warmer) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		log.Info("CronJob: model warm-up running")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		WarmUp(ctx, log, warmers)
	})
	if err != nil {
		return nil, fmt.Errorf("error scheduling warm-up %q: %w", schedule, err)
	}

	c.Start()
	return c, nil
}
