package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetStats fans the three count queries out in parallel; each goroutine runs
// one read-only query against the pool.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	var stats dashboard.StatsResponse
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		stats.TotalEmployees = total
		return nil
	})

	g.Go(func() error {
		present, absent, err := s.CountAttendanceTodayByStatus(gCtx)
		if err != nil {
			return err
		}
		stats.PresentToday = present
		stats.AbsentToday = absent
		return nil
	})

	g.Go(func() error {
		total, err := s.CountAttendanceRecords(gCtx)
		if err != nil {
			return err
		}
		stats.TotalAttendanceRecords = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, err
	}
	return stats, nil
}
