package order

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// LineItem is a product and the quantity requested. Stored inside the order row.
type LineItem struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID        string
	Items     []LineItem
	Total     float64
	ClientID  string
	SellerID  string
	Status    Status
	CreatedAt time.Time
}

func (o *Order) OwnerID() string { return o.SellerID }

type CreateInput struct {
	ClientID string
	Items    []LineItem
	Total    float64
	Status   *Status
}

// ReviseInput overwrites only the fields that are set. A nil Items keeps the
// current line items.
type ReviseInput struct {
	ClientID *string
	Items    []LineItem
	Total    *float64
	Status   *Status
}
