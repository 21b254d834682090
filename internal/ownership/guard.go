package ownership

import "crm-be/internal/apperror"

// Owned is implemented by resources that belong to a single seller.
type Owned interface {
	OwnerID() string
}

// Check fails with a Forbidden error when the requester is not the owner.
func Check(ownerID, requesterID string) error {
	if ownerID == "" || ownerID != requesterID {
		return apperror.New(apperror.ErrForbidden, "you do not have permission to access this resource")
	}
	return nil
}

// Authorize runs Check against the owner of res.
func Authorize(res Owned, requesterID string) error {
	return Check(res.OwnerID(), requesterID)
}
