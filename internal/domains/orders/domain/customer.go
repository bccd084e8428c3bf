package domain

import (
	"errors"
	"strings"
)

var ErrEmptyCustomerName = errors.New("customer name is required")

// Customer owns a set of order headers.
type Customer struct {
	BaseEntity
	CustomerName string
	Address      Address
	Phone        string
	Email        string
	OrderHeaders []*OrderHeader
}

// Validate enforces the customer invariants.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.CustomerName) == "" {
		return ErrEmptyCustomerName
	}
	return nil
}

// AddOrderHeader links both sides of the customer/order association.
func (c *Customer) AddOrderHeader(header *OrderHeader) {
	if header == nil {
		return
	}
	header.Customer = c
	for _, existing := range c.OrderHeaders {
		if existing == header {
			return
		}
	}
	c.OrderHeaders = append(c.OrderHeaders, header)
}

// Equal compares customers by persistent identity.
func (c *Customer) Equal(other *Customer) bool {
	if c == nil || other == nil {
		return false
	}
	return c.SameIdentity(other.BaseEntity)
}

// Clone copies the customer and its order headers without sharing pointers.
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	clone := c.shallowClone()
	for _, header := range c.OrderHeaders {
		if header == nil {
			continue
		}
		h := header.cloneWith(clone)
		clone.OrderHeaders = append(clone.OrderHeaders, h)
	}
	return clone
}

func (c *Customer) shallowClone() *Customer {
	if c == nil {
		return nil
	}
	clone := *c
	clone.OrderHeaders = nil
	return &clone
}
