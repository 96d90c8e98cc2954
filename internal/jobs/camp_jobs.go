package jobs

import (
	"context"
	"time"

	"bloodbank-backend/internal/logger"
)

// CompletePastCamps transitions camps dated before today from Upcoming to
// Completed and closes out their scheduled appointments.
func (jr *JobRunner) CompletePastCamps() {
	jr.runWithRecovery("CompletePastCamps", func() {
		ctx := context.Background()
		today := time.Now().Format("2006-01-02")

		campIDs, err := jr.campRepo.CompletePastCamps(ctx, today)
		if err != nil {
			logger.Error("Failed to complete past camps", "error", err)
			return
		}

		for _, campID := range campIDs {
			if err := jr.apptRepo.CompleteByCamp(ctx, campID); err != nil {
				logger.Error("Failed to complete appointments for camp", "camp_id", campID, "error", err)
				continue
			}
			logger.Debug("Completed past camp", "camp_id", campID)
		}

		logger.Info("Completed past camps", "count", len(campIDs))
	})
}
