package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gym-admin/internal/domain"
	"gym-admin/internal/repository/file"
	"gym-admin/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededAnalytics builds an analytics service over a store holding a known
// mix of members, classes and trainers.
func seededAnalytics(t *testing.T) service.AnalyticsService {
	t.Helper()
	store, err := file.Open(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, err)
	ctx := context.Background()

	memberRepo := file.NewMemberRepository(store)
	classRepo := file.NewClassRepository(store)
	trainerRepo := file.NewTrainerRepository(store)

	// Two members joining today (Create stamps today's date), one backdated
	// far outside the 30-day window via a patch.
	_, err = memberRepo.Create(ctx, &domain.Member{Name: "Bob"})
	require.NoError(t, err)
	_, err = memberRepo.Create(ctx, &domain.Member{Name: "Carol"})
	require.NoError(t, err)
	_, err = memberRepo.Create(ctx, &domain.Member{Name: "Old Timer"})
	require.NoError(t, err)
	old := time.Now().AddDate(0, 0, -40).Format(domain.DateLayout)
	_, err = memberRepo.Update(ctx, "M003", domain.MemberPatch{JoinDate: &old})
	require.NoError(t, err)

	trainer, err := trainerRepo.Create(ctx, &domain.Trainer{Name: "Sam"})
	require.NoError(t, err)
	_, err = trainerRepo.Create(ctx, &domain.Trainer{Name: "Idle"})
	require.NoError(t, err)

	_, err = classRepo.Create(ctx, &domain.Class{Name: "Spin", Capacity: 20, InstructorID: trainer.ID})
	require.NoError(t, err)
	enrolled := 10
	capacity := 20
	classSvc := service.NewClassService(classRepo)
	_, err = classSvc.Update(ctx, "C001", domain.ClassPatch{Enrolled: &enrolled, Capacity: &capacity})
	require.NoError(t, err)

	_, err = classRepo.Create(ctx, &domain.Class{Name: "Waitlist Only", Capacity: 0, InstructorID: trainer.ID})
	require.NoError(t, err)

	return service.NewAnalyticsService(store)
}

func TestSummaryTotalsAndBuckets(t *testing.T) {
	svc := seededAnalytics(t)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalMembers)
	assert.Equal(t, 2, summary.TotalClasses)
	assert.Equal(t, 2, summary.TotalTrainers)

	// Only the two recent joiners fall in the trailing 30 days, both on the
	// same calendar day.
	today := time.Now().Format(domain.DateLayout)
	require.Len(t, summary.MemberGrowth, 1)
	assert.Equal(t, domain.GrowthPoint{Date: today, Count: 2}, summary.MemberGrowth[0])
}

func TestSummaryClassAttendance(t *testing.T) {
	svc := seededAnalytics(t)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.ClassAttendance, 2)
	assert.Equal(t, domain.AttendancePoint{Name: "Spin", Attendance: 50}, summary.ClassAttendance[0])
	// Zero capacity yields zero attendance, never a division error.
	assert.Equal(t, domain.AttendancePoint{Name: "Waitlist Only", Attendance: 0}, summary.ClassAttendance[1])
}

func TestSummaryTrainerPerformance(t *testing.T) {
	svc := seededAnalytics(t)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.TrainerPerformance, 2)
	assert.Equal(t, domain.PerformancePoint{Name: "Sam", ClassCount: 2}, summary.TrainerPerformance[0])
	assert.Equal(t, domain.PerformancePoint{Name: "Idle", ClassCount: 0}, summary.TrainerPerformance[1])
}

func TestSummaryOnEmptyStore(t *testing.T) {
	store, err := file.Open(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, err)

	summary, err := service.NewAnalyticsService(store).Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalMembers)
	assert.Empty(t, summary.MemberGrowth)
	assert.Empty(t, summary.ClassAttendance)
	assert.Empty(t, summary.TrainerPerformance)
}
