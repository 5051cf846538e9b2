package payments

import (
	"errors"
	"net/url"
	"strconv"
)

// ErrMissingProduct indicates a checkout request without a product identifier.
var ErrMissingProduct = errors.New("productId is required")

// Service builds checkout links for the external payment page. No payment
// provider is integrated; the generated URL is a hand-off to the web front
// end.
type Service struct {
	baseURL string
}

// NewService creates a payment-link service rooted at the configured base URL.
func NewService(baseURL string) *Service {
	return &Service{baseURL: baseURL}
}

// CheckoutURL returns the payment page URL for a product and user.
func (s *Service) CheckoutURL(productID string, telegramID int64) (string, error) {
	if productID == "" {
		return "", ErrMissingProduct
	}

	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("product", productID)
	q.Set("user", strconv.FormatInt(telegramID, 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
