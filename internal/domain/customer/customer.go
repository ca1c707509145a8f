package customer

import "time"

// Customer is one row of the customers table. Rows are owned by the store and
// are never modified by this service.
type Customer struct {
	Serial    int64     `json:"sno"`
	Name      string    `json:"customer_name"`
	Age       int       `json:"age"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
