package model

import "github.com/google/uuid"

// Owned is a resource with a single recorded author. The ownership policy in
// the service layer compares OwnerID against the requester's verified
// identity before any update or delete.
type Owned interface {
	OwnerID() uuid.UUID
}
