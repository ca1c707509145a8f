package customer

import (
	"context"
)

type CustomerRepository interface {
	// ListAll returns every row of the customers table in store order.
	ListAll(ctx context.Context) ([]*Customer, error)

	Count(ctx context.Context) (int64, error)
}
