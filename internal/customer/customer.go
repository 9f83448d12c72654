package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/entityvalidator/pkg/phonepattern"
)

// Status is the lifecycle state of a customer account.
type Status int

const (
	StatusActive Status = iota + 1
	StatusSuspended
	StatusClosed
)

var statusNames = map[Status]string{
	StatusActive:    "active",
	StatusSuspended: "suspended",
	StatusClosed:    "closed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStatus resolves a status name. Unknown names return the zero Status,
// which no validator accepts.
func ParseStatus(name string) Status {
	for s, n := range statusNames {
		if n == name {
			return s
		}
	}
	return 0
}

// Customer is a billing customer as submitted by signup forms and imports.
type Customer struct {
	ID          string
	Name        string
	Handle      string
	Email       string
	Country     phonepattern.CountryCode
	Phone       string
	Website     string
	Gender      string
	Timezone    string
	BirthDate   time.Time
	Status      Status
	Business    bool
	VATNumber   string
	CreditLimit decimal.Decimal
}

// New returns an active customer with a fresh ID.
func New(name, email string, country phonepattern.CountryCode) Customer {
	return Customer{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Country:  country,
		Timezone: "UTC",
		Status:   StatusActive,
	}
}
