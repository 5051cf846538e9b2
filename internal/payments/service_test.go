package payments

import (
	"errors"
	"testing"
)

func TestCheckoutURL(t *testing.T) {
	svc := NewService("https://example.com/pay")

	got, err := svc.CheckoutURL("premium", 42)
	if err != nil {
		t.Fatalf("checkout url: %v", err)
	}
	want := "https://example.com/pay?product=premium&user=42"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCheckoutURLEscapesProduct(t *testing.T) {
	svc := NewService("https://example.com/pay")

	got, err := svc.CheckoutURL("a b&c", 7)
	if err != nil {
		t.Fatalf("checkout url: %v", err)
	}
	want := "https://example.com/pay?product=a+b%26c&user=7"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCheckoutURLMissingProduct(t *testing.T) {
	svc := NewService("https://example.com/pay")

	if _, err := svc.CheckoutURL("", 42); !errors.Is(err, ErrMissingProduct) {
		t.Fatalf("expected ErrMissingProduct, got %v", err)
	}
}
