package customer

import "context"

// CustomerService defines business logic for customer management
type CustomerService interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	GetCustomer(ctx context.Context, id string) (CustomerResponse, error)
	UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) (CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context, filter Filter) (ListCustomersResponse, error)
}
