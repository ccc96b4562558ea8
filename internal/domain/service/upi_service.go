package service

import (
	"fmt"
	"net/url"

	"taruvae/pkg/errors"
)

// UPIService builds deep links into third-party UPI apps. The redirect is
// best effort: there is no callback or webhook, order confirmation proceeds
// on the customer's self-report.
type UPIService struct {
	payeeVPA  string
	payeeName string
}

func NewUPIService(payeeVPA, payeeName string) *UPIService {
	return &UPIService{
		payeeVPA:  payeeVPA,
		payeeName: payeeName,
	}
}

var upiSchemes = map[string]string{
	"":        "upi://pay",
	"upi":     "upi://pay",
	"gpay":    "tez://upi/pay",
	"phonepe": "phonepe://pay",
	"paytm":   "paytmmp://pay",
}

// PaymentLink renders the pay intent for the given app. Amount is in whole
// currency units.
func (s *UPIService) PaymentLink(app, orderID string, amount int64) (string, error) {
	if s.payeeVPA == "" {
		return "", errors.Unavailable("UPI payments are not configured", nil)
	}
	if amount <= 0 {
		return "", errors.BadRequest("Payment amount must be positive", nil)
	}

	scheme, ok := upiSchemes[app]
	if !ok {
		return "", errors.BadRequest("Unknown UPI app", nil)
	}

	params := url.Values{}
	params.Set("pa", s.payeeVPA)
	params.Set("pn", s.payeeName)
	params.Set("am", fmt.Sprintf("%d.00", amount))
	params.Set("cu", "INR")
	params.Set("tr", orderID)
	params.Set("tn", "Order "+orderID)

	return scheme + "?" + params.Encode(), nil
}
