package employee

import (
	"fmt"
	"sync"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
)

// Registry is the in-memory set of employees in registration order. It stores
// and hands out clones, so callers never share mutable state with it.
type Registry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]employee.Employee
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]employee.Employee)}
}

var _ employee.Directory = (*Registry)(nil)

// Insert adds a new employee at the end of the registration order.
func (r *Registry) Insert(e employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID()]; ok {
		return employee.ErrEmployeeExists
	}
	r.byID[e.ID()] = e.Clone()
	r.order = append(r.order, e.ID())
	return nil
}

// Put replaces a registered employee, keeping its position.
func (r *Registry) Put(e employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID()]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.byID[e.ID()] = e.Clone()
	return nil
}

func (r *Registry) Get(id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return e.Clone(), nil
}

func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns clones of every employee in registration order.
func (r *Registry) List() []employee.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// NextID returns the first free ID of the form <prefix><nnn> for kind,
// counting up from the number of employees already registered.
func (r *Registry) NextID(kind employee.Kind) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for n := len(r.order) + 1; ; n++ {
		id := fmt.Sprintf("%s%03d", kind.Prefix(), n)
		if _, taken := r.byID[id]; !taken {
			return id
		}
	}
}
