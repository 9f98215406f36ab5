package service

import (
	"context"
	"sort"
	"time"

	"gym-admin/internal/domain"
	"gym-admin/internal/repository"
)

// AnalyticsService derives dashboard statistics from the record collections.
// It is stateless and read-only: everything is recomputed per call from one
// consistent snapshot, never from a sequence of independent reads.
type AnalyticsService interface {
	Summary(ctx context.Context) (*domain.Summary, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new instance of analyticsService.
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

func (s *analyticsService) Summary(ctx context.Context) (*domain.Summary, error) {
	snap, err := s.analyticsRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		TotalMembers:       len(snap.Members),
		TotalClasses:       len(snap.Classes),
		TotalTrainers:      len(snap.Trainers),
		MemberGrowth:       memberGrowth(snap.Members, time.Now()),
		ClassAttendance:    classAttendance(snap.Classes),
		TrainerPerformance: trainerPerformance(snap.Trainers, snap.Classes),
	}, nil
}

// memberGrowth buckets members who joined in the trailing 30 days by calendar
// day. Records with unparseable join dates are skipped. The result is sorted
// by date so the payload is deterministic.
func memberGrowth(members []domain.Member, now time.Time) []domain.GrowthPoint {
	cutoff := now.AddDate(0, 0, -30)

	byDate := make(map[string]int)
	for _, m := range members {
		joined, err := time.Parse(domain.DateLayout, m.JoinDate)
		if err != nil {
			continue
		}
		if joined.Before(cutoff) {
			continue
		}
		byDate[m.JoinDate]++
	}

	points := make([]domain.GrowthPoint, 0, len(byDate))
	for date, count := range byDate {
		points = append(points, domain.GrowthPoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// classAttendance computes the fill percentage per class. A class with zero
// capacity reports 0, never a division error.
func classAttendance(classes []domain.Class) []domain.AttendancePoint {
	points := make([]domain.AttendancePoint, 0, len(classes))
	for _, c := range classes {
		attendance := 0.0
		if c.Capacity > 0 {
			attendance = float64(c.Enrolled) / float64(c.Capacity) * 100
		}
		points = append(points, domain.AttendancePoint{Name: c.Name, Attendance: attendance})
	}
	return points
}

// trainerPerformance counts, per trainer, the classes whose instructorId
// matches. Classes referencing unknown instructors count for nobody.
func trainerPerformance(trainers []domain.Trainer, classes []domain.Class) []domain.PerformancePoint {
	points := make([]domain.PerformancePoint, 0, len(trainers))
	for _, t := range trainers {
		count := 0
		for _, c := range classes {
			if c.InstructorID == t.ID {
				count++
			}
		}
		points = append(points, domain.PerformancePoint{Name: t.Name, ClassCount: count})
	}
	return points
}
