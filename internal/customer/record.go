package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/entityvalidator/pkg/phonepattern"
)

// ErrMalformedRecord is returned when a record field cannot be converted to its Customer type.
var ErrMalformedRecord = errors.New("malformed customer record")

// DateLayout is the format of BirthDate in records.
const DateLayout = "2006-01-02"

// Record is the wire form of a Customer in YAML and JSON imports.
// Every field is text so that bad values reach the validator instead of
// failing the decode.
type Record struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Handle      string `yaml:"handle" json:"handle"`
	Email       string `yaml:"email" json:"email"`
	Country     string `yaml:"country" json:"country"`
	Phone       string `yaml:"phone" json:"phone"`
	Website     string `yaml:"website" json:"website"`
	Gender      string `yaml:"gender" json:"gender"`
	Timezone    string `yaml:"timezone" json:"timezone"`
	BirthDate   string `yaml:"birth_date" json:"birth_date"`
	Status      string `yaml:"status" json:"status"`
	Business    bool   `yaml:"business" json:"business"`
	VATNumber   string `yaml:"vat_number" json:"vat_number"`
	CreditLimit string `yaml:"credit_limit" json:"credit_limit"`
}

// Customer converts r. Unparsable dates and amounts are rejected; every other
// field is passed through for the validator to judge.
func (r Record) Customer() (Customer, error) {
	c := Customer{
		ID:        r.ID,
		Name:      r.Name,
		Handle:    r.Handle,
		Email:     r.Email,
		Country:   phonepattern.CountryCode(strings.ToUpper(strings.TrimSpace(r.Country))),
		Phone:     r.Phone,
		Website:   r.Website,
		Gender:    r.Gender,
		Timezone:  r.Timezone,
		Status:    ParseStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		Business:  r.Business,
		VATNumber: r.VATNumber,
	}

	if r.BirthDate != "" {
		d, err := time.Parse(DateLayout, r.BirthDate)
		if err != nil {
			return Customer{}, fmt.Errorf("%w: birth_date: %w", ErrMalformedRecord, err)
		}
		c.BirthDate = d
	}

	if r.CreditLimit != "" {
		limit, err := decimal.NewFromString(r.CreditLimit)
		if err != nil {
			return Customer{}, fmt.Errorf("%w: credit_limit: %w", ErrMalformedRecord, err)
		}
		c.CreditLimit = limit
	}

	return c, nil
}
