package enums

import "fmt"

// PaymentMethod describes how a customer intends to settle an order.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodPaypal   PaymentMethod = "paypal"
	PaymentMethodTouchNGo PaymentMethod = "touchngo"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodPaypal,
	PaymentMethodTouchNGo,
}

var paymentSuccessMessages = map[PaymentMethod]string{
	PaymentMethodCash:     "Your order will be paid upon delivery! 💵",
	PaymentMethodCard:     "Redirecting to secure payment gateway... 💳",
	PaymentMethodPaypal:   "Redirecting to PayPal... 🅿️",
	PaymentMethodTouchNGo: "Redirecting to Touch & Go e-Wallet... 📱",
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// SuccessMessage returns the customer-facing confirmation line for the method.
func (p PaymentMethod) SuccessMessage() string {
	if msg, ok := paymentSuccessMessages[p]; ok {
		return msg
	}
	return paymentSuccessMessages[PaymentMethodCash]
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
