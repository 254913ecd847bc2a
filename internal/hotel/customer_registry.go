package hotel

import (
	"sync"

	"github.com/grandpalace/booking/internal/logger"
)

// CustomerRegistry holds registered customers keyed by id, in insertion
// order.
type CustomerRegistry struct {
	mu        sync.Mutex
	l         *logger.Logger
	customers map[string]*Customer
	order     []string
}

func NewCustomerRegistry(l *logger.Logger) *CustomerRegistry {
	return &CustomerRegistry{
		l:         l,
		customers: make(map[string]*Customer),
	}
}

// Add rejects nil customers and duplicate ids with a false result and no
// mutation.
func (r *CustomerRegistry) Add(customer *Customer) bool {
	if customer == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.ID]; exists {
		r.l.LogWarnf("Customer %v already exists", customer.ID)

		return false
	}

	r.customers[customer.ID] = customer
	r.order = append(r.order, customer.ID)

	r.l.LogInfo("Customer %v registered, name %v", customer.ID, customer.Name)

	return true
}

func (r *CustomerRegistry) FindByID(id string) *Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.customers[id]
}

// FindByEmail returns the first registered customer with the given email,
// or nil.
func (r *CustomerRegistry) FindByEmail(email string) *Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if customer := r.customers[id]; customer.Email == email {
			return customer
		}
	}

	return nil
}

func (r *CustomerRegistry) All() []*Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*Customer, 0, len(r.order))

	for _, id := range r.order {
		result = append(result, r.customers[id])
	}

	return result
}

func (r *CustomerRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.customers)
}
