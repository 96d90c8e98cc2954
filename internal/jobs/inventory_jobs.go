package jobs

import (
	"context"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
)

// SendLowStockAlerts emails admins a digest of every blood type at Low or
// Critical stock.
func (jr *JobRunner) SendLowStockAlerts() {
	jr.runWithRecovery("SendLowStockAlerts", func() {
		ctx := context.Background()

		entries, err := jr.invRepo.List(ctx)
		if err != nil {
			logger.Error("Failed to list inventory for stock alerts", "error", err)
			return
		}

		var flagged []domain.InventoryEntry
		for _, e := range entries {
			if e.Status == domain.StockStatusLow || e.Status == domain.StockStatusCritical {
				flagged = append(flagged, e)
			}
		}

		if len(flagged) == 0 {
			logger.Debug("All blood types sufficiently stocked, no alert sent")
			return
		}

		if err := jr.emailSvc.SendLowStockAlert(ctx, flagged); err != nil {
			logger.Error("Failed to send low stock alert", "error", err)
			return
		}
		logger.Info("Sent low stock alert", "flagged_types", len(flagged))
	})
}
