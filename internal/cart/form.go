package cart

import (
	"regexp"
	"strings"
)

// Deliberately loose: anything shaped like x@y.z passes. Full RFC
// validation rejects real addresses and is not worth it here.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// CheckoutForm carries the customer fields entered at checkout.
// swagger:model
type CheckoutForm struct {
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

// Validate returns field name -> message for every failing field; an empty
// map means the form is valid. The input is never mutated, and errors are
// keyed per field so the UI can clear them independently as the user edits.
func (f CheckoutForm) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(f.CustomerName) == "" {
		errs["customer_name"] = "Name is required"
	}
	switch {
	case strings.TrimSpace(f.Email) == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(strings.TrimSpace(f.Email)):
		errs["email"] = "Email is invalid"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Address is required"
	}
	return errs
}
