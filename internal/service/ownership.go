package service

import (
	"github.com/google/uuid"

	"nexus/internal/errors"
	"nexus/internal/model"
)

// requireOwner is the single ownership policy: only the recorded author may
// mutate an article or comment. Every update/delete path goes through this
// function rather than comparing ids inline.
func requireOwner(res model.Owned, requesterID uuid.UUID) error {
	if res.OwnerID() != requesterID {
		return errors.ErrForbidden
	}
	return nil
}
