// Package scheduler runs the daily overdue sweep on a cron schedule.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/sgkim-dev/contract-desk/internal/service"
)

const sweepTimeout = 2 * time.Minute

type Scheduler struct {
	cron  *cron.Cron
	sweep *service.SweepService
	log   zerolog.Logger
}

func New(sweep *service.SweepService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		sweep: sweep,
		log:   log,
	}
}

// Start registers the sweep job and kicks off the cron loop.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.runSweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("spec", spec).Msg("sweep scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	flagged, err := s.sweep.MarkOverdue(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("scheduled sweep failed")
		return
	}
	s.log.Info().Int("delayed", len(flagged)).Msg("scheduled sweep finished")
}
