package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Sweeper reclaims expired reservations on a schedule. It runs the same
// atomic release primitive the service exposes on demand, so a ticket
// confirmed a moment before a sweep is never touched.
type Sweeper struct {
	svc  *RaffleService
	cron *cron.Cron
	spec string
}

func NewSweeper(svc *RaffleService, spec string) *Sweeper {
	return &Sweeper{
		svc:  svc,
		cron: cron.New(),
		spec: spec,
	}
}

// Start schedules the sweep and runs one immediately to catch holds that
// expired while the process was down.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Info().Str("spec", s.spec).Msg("expiry sweeper started")

	go s.sweep()
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("expiry sweeper stopped")
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	released, err := s.svc.ReleaseExpired(ctx, "")
	if err != nil {
		log.Error().Err(err).Msg("expiry sweep failed")
		return
	}

	if released > 0 {
		log.Info().Int64("released", released).Msg("expiry sweep done")
	}
}
