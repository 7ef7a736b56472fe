package applicants

import "Backend-CorpsConnect/src/models"

// validTransitions encodes the review pipeline. Accepted, rejected and
// withdrawn are terminal.
var validTransitions = map[string][]string{
	models.ApplicationStatusPending: {
		models.ApplicationStatusUnderReview,
		models.ApplicationStatusShortlisted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn,
	},
	models.ApplicationStatusUnderReview: {
		models.ApplicationStatusShortlisted,
		models.ApplicationStatusInterview,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn,
	},
	models.ApplicationStatusShortlisted: {
		models.ApplicationStatusInterview,
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn,
	},
	models.ApplicationStatusInterview: {
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn,
	},
}

// CanTransition reports whether an application may move between the two
// statuses.
func CanTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends the pipeline.
func IsTerminal(status string) bool {
	switch status {
	case models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn:
		return true
	}
	return false
}
