package domain

import "strings"

// Address is embedded into customers and order headers.
type Address struct {
	Address string
	City    string
	State   string
	ZipCode string
}

// IsZero reports whether no address component is set.
func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Address) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.State) == "" &&
		strings.TrimSpace(a.ZipCode) == ""
}
