package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"voyago/internal/repositories"
)

type ArchiveServiceInterface interface {
	// RunSweep archives every generated plan whose end date has passed and
	// returns how many plans it touched.
	RunSweep(ctx context.Context) (int64, error)
	Start() error
	Stop()
}

type ArchiveService struct {
	planRepo repositories.PlanRepository
	cron     *cron.Cron
}

func NewArchiveService(planRepo repositories.PlanRepository) ArchiveServiceInterface {
	return &ArchiveService{
		planRepo: planRepo,
		cron:     cron.New(),
	}
}

func (s *ArchiveService) RunSweep(ctx context.Context) (int64, error) {
	archived, err := s.planRepo.ArchiveExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if archived > 0 {
		log.Printf("archive sweep: %d plan(s) moved to archived", archived)
	}

	return archived, nil
}

// Start schedules the daily sweep. ARCHIVE_SWEEP_TIME sets the local HH:MM,
// default 03:00.
func (s *ArchiveService) Start() error {
	spec, err := buildDailySpec(os.Getenv("ARCHIVE_SWEEP_TIME"))
	if err != nil {
		return err
	}

	_, err = s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if _, err := s.RunSweep(ctx); err != nil {
			log.Printf("archive sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("archive sweep scheduled with spec %q", spec)
	return nil
}

func (s *ArchiveService) Stop() {
	s.cron.Stop()
}

func buildDailySpec(at string) (string, error) {
	if at == "" {
		at = "03:00"
	}

	parts := strings.Split(at, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid sweep time %q, want HH:MM", at)
	}

	t, err := time.Parse("15:04", at)
	if err != nil {
		return "", fmt.Errorf("invalid sweep time %q: %w", at, err)
	}

	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}
