package service_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taruvae/internal/domain/service"
)

func TestPaymentLinkDefaultsToGenericUPIScheme(t *testing.T) {
	svc := service.NewUPIService("taruvae@upi", "Taruvae")

	link, err := svc.PaymentLink("", "ORD-1700000000000", 548)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "upi://pay?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "taruvae@upi", query.Get("pa"))
	assert.Equal(t, "Taruvae", query.Get("pn"))
	assert.Equal(t, "548.00", query.Get("am"))
	assert.Equal(t, "INR", query.Get("cu"))
	assert.Equal(t, "ORD-1700000000000", query.Get("tr"))
}

func TestPaymentLinkSchemePerApp(t *testing.T) {
	svc := service.NewUPIService("taruvae@upi", "Taruvae")

	cases := map[string]string{
		"upi":     "upi://pay?",
		"gpay":    "tez://upi/pay?",
		"phonepe": "phonepe://pay?",
		"paytm":   "paytmmp://pay?",
	}
	for app, prefix := range cases {
		link, err := svc.PaymentLink(app, "ORD-1", 100)
		require.NoError(t, err, app)
		assert.True(t, strings.HasPrefix(link, prefix), "app %s got %s", app, link)
	}

	_, err := svc.PaymentLink("venmo", "ORD-1", 100)
	assert.Error(t, err)
}

func TestPaymentLinkRejectsBadAmountAndMissingConfig(t *testing.T) {
	svc := service.NewUPIService("taruvae@upi", "Taruvae")
	_, err := svc.PaymentLink("upi", "ORD-1", 0)
	assert.Error(t, err)

	unconfigured := service.NewUPIService("", "")
	_, err = unconfigured.PaymentLink("upi", "ORD-1", 100)
	assert.Error(t, err)
}
