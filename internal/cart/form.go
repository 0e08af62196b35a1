package cart

import (
	"strings"

	"github.com/amirulhakim/spicebite-backend/pkg/enums"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
)

// CheckoutForm holds the customer contact and delivery fields plus the
// selected payment method. Name, email, address and city are required for
// submission; phone and postal code are optional.
type CheckoutForm struct {
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	PostalCode    string              `json:"postal_code"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
}

// NewCheckoutForm returns the initial form state with the cash default.
func NewCheckoutForm() CheckoutForm {
	return CheckoutForm{PaymentMethod: enums.PaymentMethodCash}
}

// Validate checks the form for submission without mutating it. Whitespace
// counts as empty.
func (f CheckoutForm) Validate() error {
	missing := []string{}
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(f.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(f.City) == "" {
		missing = append(missing, "city")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "please fill in all required fields").
			WithDetails(map[string]any{"missing": missing})
	}
	if !f.PaymentMethod.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "please select a payment method")
	}
	return nil
}
