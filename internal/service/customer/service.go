package customer

import (
	"context"
	"errors"

	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/customer"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type CustomerServiceImpl struct {
	db *database.DB
	customer.Repository
}

func NewCustomerService(db *database.DB, customerRepo customer.Repository) customer.CustomerService {
	return &CustomerServiceImpl{
		db:         db,
		Repository: customerRepo,
	}
}

// CreateCustomer implements customer.CustomerService.
func (s *CustomerServiceImpl) CreateCustomer(ctx context.Context, req customer.CreateCustomerRequest) (customer.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return customer.CustomerResponse{}, err
	}

	if _, err := s.Repository.GetByPhone(ctx, req.Phone); err == nil {
		return customer.CustomerResponse{}, customer.ErrPhoneExists
	} else if !errors.Is(err, customer.ErrCustomerNotFound) {
		return customer.CustomerResponse{}, err
	}

	created, err := s.Repository.Create(ctx, customer.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return customer.CustomerResponse{}, err
	}

	return toCustomerResponse(created), nil
}

// GetCustomer implements customer.CustomerService.
func (s *CustomerServiceImpl) GetCustomer(ctx context.Context, id string) (customer.CustomerResponse, error) {
	c, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return customer.CustomerResponse{}, err
	}
	return toCustomerResponse(c), nil
}

// UpdateCustomer implements customer.CustomerService.
func (s *CustomerServiceImpl) UpdateCustomer(ctx context.Context, req customer.UpdateCustomerRequest) (customer.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return customer.CustomerResponse{}, err
	}

	c, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return customer.CustomerResponse{}, err
	}

	if req.Phone != nil && *req.Phone != c.Phone {
		if existing, err := s.Repository.GetByPhone(ctx, *req.Phone); err == nil && existing.ID != c.ID {
			return customer.CustomerResponse{}, customer.ErrPhoneExists
		} else if err != nil && !errors.Is(err, customer.ErrCustomerNotFound) {
			return customer.CustomerResponse{}, err
		}
		c.Phone = *req.Phone
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Address != nil {
		c.Address = *req.Address
	}

	if err := s.Repository.Update(ctx, c); err != nil {
		return customer.CustomerResponse{}, err
	}

	return toCustomerResponse(c), nil
}

// DeleteCustomer implements customer.CustomerService.
func (s *CustomerServiceImpl) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repository.SoftDelete(ctx, id)
}

// ListCustomers implements customer.CustomerService.
func (s *CustomerServiceImpl) ListCustomers(ctx context.Context, filter customer.Filter) (customer.ListCustomersResponse, error) {
	if err := filter.Validate(); err != nil {
		return customer.ListCustomersResponse{}, err
	}

	customers, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return customer.ListCustomersResponse{}, err
	}

	resp := customer.ListCustomersResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Customers:  make([]customer.CustomerResponse, 0, len(customers)),
	}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, toCustomerResponse(c))
	}
	return resp, nil
}

func toCustomerResponse(c customer.Customer) customer.CustomerResponse {
	return customer.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
