package schedule

import (
	"fmt"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// Normalize folds the stored schedule shapes into one uniform Schedule.
// Records written by newer app versions carry scheduledTimes; older records
// carry the single hourToTake/minuteToTake pair. When both are present the
// multi-slot shape wins, since the app migrates records forward only.
func Normalize(rec *domain.MedicationRecord) (domain.Schedule, error) {
	if rec == nil {
		return domain.Schedule{}, domain.ErrMedicationNotFound
	}

	if len(rec.ScheduledTimes) > 0 {
		sched, err := domain.NewSchedule(rec.ScheduledTimes)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("medication %s: %w", rec.ID, err)
		}
		return sched, nil
	}

	if rec.LegacyHour != nil && rec.LegacyMinute != nil {
		sched, err := domain.NewSchedule([]domain.TimeOfDay{
			{Hour: *rec.LegacyHour, Minute: *rec.LegacyMinute},
		})
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("medication %s: %w", rec.ID, err)
		}
		return sched, nil
	}

	return domain.Schedule{}, fmt.Errorf("medication %s: %w", rec.ID, domain.ErrEmptySchedule)
}
