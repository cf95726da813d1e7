package booking

import (
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// CanTransition is the single transition table consulted by every path that
// changes a booking status. Ownership is checked by the caller.
func CanTransition(role string, current, target Status) error {
	switch role {
	case models.RoleAdmin:
		return nil

	case models.RoleCustomer:
		if target == StatusCancelled &&
			(current == StatusPending || current == StatusAccepted) {
			return nil
		}

	case models.RoleProvider:
		if (target == StatusAccepted || target == StatusRejected) &&
			current == StatusPending {
			return nil
		}
	}

	return httperr.Forbidden(
		"transition_not_allowed",
		"Booking cannot move from "+string(current)+" to "+string(target)+".",
	)
}

// Transition validates and applies a status change in memory.
func Transition(
	b *models.Booking,
	role string,
	actorID uint,
	target Status,
	reason string,
	now time.Time,
) error {
	if err := CanTransition(role, Status(b.Status), target); err != nil {
		return err
	}

	b.Status = string(target)

	switch target {
	case StatusCancelled:
		b.CancelledAt = &now
		b.CancelledBy = &actorID
		b.CancellationReason = reason
	case StatusCompleted:
		b.CompletedAt = &now
	}

	return nil
}
