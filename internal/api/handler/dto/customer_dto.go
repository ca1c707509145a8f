package dto

import (
	"customer-dashboard/internal/domain/customer"
	"time"
)

type CustomerResponse struct {
	Serial    int64     `json:"sno" example:"1"`
	Name      string    `json:"customer_name" example:"Alice"`
	Age       int       `json:"age" example:"30"`
	Phone     string    `json:"phone" example:"555-0100"`
	Location  string    `json:"location" example:"NYC"`
	CreatedAt time.Time `json:"created_at" example:"2022-01-01T00:00:00Z"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		Serial:    cust.Serial,
		Name:      cust.Name,
		Age:       cust.Age,
		Phone:     cust.Phone,
		Location:  cust.Location,
		CreatedAt: cust.CreatedAt,
	}
}

func NewCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		resp = append(resp, NewCustomerResponse(cust))
	}
	return resp
}

type ErrorResponse struct {
	Error string `json:"error" example:"Internal Server Error"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
