package entity

// OrderLine is a raw joined row from Orders / "Order Details" / Customers.
// It is not serialized directly; the service layer turns it into a
// ProductOrder with the computed total.
type OrderLine struct {
	OrderID   int
	Customer  string
	Quantity  int
	UnitPrice float64
	Discount  float64
}

type ProductOrder struct {
	ID         int     `json:"id"`
	Customer   string  `json:"customer"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}
