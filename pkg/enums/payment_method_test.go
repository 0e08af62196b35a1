package enums

import "testing"

func TestParsePaymentMethod(t *testing.T) {
	for _, value := range []string{"cash", "card", "paypal", "touchngo"} {
		method, err := ParsePaymentMethod(value)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", value, err)
		}
		if method.String() != value {
			t.Fatalf("expected %q, got %q", value, method)
		}
	}

	if _, err := ParsePaymentMethod("bitcoin"); err == nil {
		t.Fatal("expected error for unknown payment method")
	}
}

func TestSuccessMessageFallsBackToCash(t *testing.T) {
	if PaymentMethod("unknown").SuccessMessage() != PaymentMethodCash.SuccessMessage() {
		t.Fatal("expected unknown methods to use the cash message")
	}
}
