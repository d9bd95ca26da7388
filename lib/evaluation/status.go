package evaluation

import (
	"fairhire-backend/models"
)

// Approval thresholds for the fairness overall score. Both tiers map to the
// same outcome; the upper one is kept until product defines a distinct tier.
const (
	scoreThresholdHigh     = 75
	scoreThresholdApproved = 55
)

// DecideStatus maps a fairness overall score to the application outcome.
func DecideStatus(score float64) models.ApplicationStatus {
	switch {
	case score >= scoreThresholdHigh:
		return models.ApplicationStatusApproved
	case score >= scoreThresholdApproved:
		return models.ApplicationStatusApproved
	default:
		return models.ApplicationStatusRejected
	}
}
