package app

import (
	"context"
	"time"

	"facility-booking/internal/data/repository"

	"go.uber.org/zap"
)

// Sweeper periodically marks finished studio and meeting-room
// reservations as passed, so the lists reflect reality without a write
// hidden inside a read path.
type Sweeper struct {
	studio      repository.StudioReservationRepository
	meetingRoom repository.MeetingRoomReservationRepository
	interval    time.Duration
	log         *zap.Logger
	stopChan    chan struct{}
}

func NewSweeper(studio repository.StudioReservationRepository, meetingRoom repository.MeetingRoomReservationRepository, interval time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{
		studio:      studio,
		meetingRoom: meetingRoom,
		interval:    interval,
		log:         log.With(zap.String("component", "sweeper")),
		stopChan:    make(chan struct{}),
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	s.log.Info("Starting passed-reservation sweeper", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Sweeper) Stop() {
	s.log.Info("Stopping passed-reservation sweeper")
	close(s.stopChan)
}

func (s *Sweeper) run(ctx context.Context) {
	// First sweep right away, then on the ticker
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			s.log.Info("Sweeper stopped")
			return
		case <-ctx.Done():
			s.log.Info("Sweeper cancelled")
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	studioCount, err := s.studio.MarkPassed(ctx)
	if err != nil {
		s.log.Error("Failed to sweep studio reservations", zap.Error(err))
	}

	roomCount, err := s.meetingRoom.MarkPassed(ctx)
	if err != nil {
		s.log.Error("Failed to sweep meeting room reservations", zap.Error(err))
	}

	if studioCount > 0 || roomCount > 0 {
		s.log.Info("Marked finished reservations as passed",
			zap.Int64("studio", studioCount),
			zap.Int64("meeting_room", roomCount))
	}
}
