package entity

// Well-known order statuses. The field itself is free-form: any string an
// admin sets is accepted and appended to the history.
const (
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// OrderItem is a snapshot of a product at purchase time, not a live
// reference. Total is computed once at creation as Price * Quantity.
type OrderItem struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Total     int64  `json:"total"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ShippingAddress struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// StatusEntry is one append-only history record.
type StatusEntry struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message,omitempty"`
}

// Order lives at orders/{orderId}. Orders are never deleted.
type Order struct {
	OrderID         string          `json:"orderId"`
	Customer        Customer        `json:"customer"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []OrderItem     `json:"items"`
	PaymentMethod   string          `json:"paymentMethod"`
	Subtotal        int64           `json:"subtotal"`
	Shipping        int64           `json:"shipping"`
	Total           int64           `json:"total"`
	Status          string          `json:"status"`
	StatusHistory   []StatusEntry   `json:"statusHistory"`
	TrackingNumber  string          `json:"trackingNumber,omitempty"`
	CreatedAt       int64           `json:"createdAt"`
}
