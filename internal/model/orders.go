package model

type OrderStatus string

// Wire literals of the FastFeet API, including the backend's
// "PICKN_UP" spelling. They are a remote contract, do not rename.
const (
	OrderStatusWaiting OrderStatus = "WAITING"
	OrderStatusPicknUp OrderStatus = "PICKN_UP"
	OrderStatusDone    OrderStatus = "DONE"
)

// Reached reports whether the linear lifecycle has reached or passed
// the given checkpoint. WAITING is always reached.
func (s OrderStatus) Reached(checkpoint OrderStatus) bool {
	return s.rank() >= checkpoint.rank() && s.rank() >= 0
}

func (s OrderStatus) rank() int {
	switch s {
	case OrderStatusWaiting:
		return 0
	case OrderStatusPicknUp:
		return 1
	case OrderStatusDone:
		return 2
	default:
		return -1
	}
}

// Order is the detail view of a single delivery, as returned by
// GET /orders/{id}. Timestamps are RFC3339 strings straight off the wire.
type Order struct {
	ID               string      `json:"id"`
	Status           OrderStatus `json:"status"`
	RecipientName    string      `json:"recipientName"`
	RecipientAddress string      `json:"recipientAddress"`
	RecipientZipcode string      `json:"recipientZipcode"`
	CreatedAt        string      `json:"createdAt"`
	PickUpAt         *string     `json:"pickUpAt,omitempty"`
	DeliveryAt       *string     `json:"deliveryAt,omitempty"`
}

// OrderSummary is a row of the paginated orders listing.
type OrderSummary struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Status    OrderStatus `json:"status"`
	CreatedAt string      `json:"createdAt"`
}

type OrdersPage struct {
	Data       []OrderSummary `json:"data"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
	PageIndex  int            `json:"pageIndex"`
	Limit      int            `json:"limit"`
}

type CreateOrderDTO struct {
	RecipientID string `json:"recipientId"`
	Title       string `json:"title"`
}

// PickUpResponse carries the server-assigned pick-up timestamp. The
// client never generates this value locally (clock skew).
type PickUpResponse struct {
	PickUpAt string `json:"pickUpAt"`
}
