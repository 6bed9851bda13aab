package booking

import "homefix/models"

// transitions lists the statuses reachable from each status. completed and cancelled are terminal.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:    {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s models.BookingStatus) bool {
	return len(transitions[s]) == 0
}

// openStatuses are the statuses in which a technician may be (re)assigned.
func openStatuses() []models.BookingStatus {
	open := make([]models.BookingStatus, 0, len(transitions))
	for s := range transitions {
		open = append(open, s)
	}
	return open
}
