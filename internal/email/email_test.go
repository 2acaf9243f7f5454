package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cottage-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIndian(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"under a thousand", 999, "999"},
		{"four digits", 1499, "1,499"},
		{"five digits", 24999, "24,999"},
		{"lakh", 123456, "1,23,456"},
		{"ten lakh", 1234567, "12,34,567"},
		{"crore", 12345678, "1,23,45,678"},
		{"zero", 0, "0"},
		{"with fraction", 1499.5, "1,499.50"},
		{"fraction carries into next rupee", 999.999, "1,000"},
		{"fraction rounds to paise", 1499.554, "1,499.55"},
		{"negative", -1234567, "-12,34,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIndian(tt.amount))
		})
	}
}

func TestRenderOrderConfirmation(t *testing.T) {
	req := &model.CheckoutRequest{
		Name:    "Asha",
		Mobile:  "9876543210",
		Address: "12 Temple Street",
		Items: []model.CheckoutItem{
			{ID: "P1", Name: "Brass Idol", Price: "₹1,499", Quantity: 2},
		},
		Total: 2998,
	}

	html, err := RenderOrderConfirmation("Cottage Store", req)
	require.NoError(t, err)

	assert.Contains(t, html, "Cottage Store")
	assert.Contains(t, html, "Asha")
	assert.Contains(t, html, "9876543210")
	assert.Contains(t, html, "Brass Idol")
	assert.Contains(t, html, "x2")
	assert.Contains(t, html, "2,998")
}

func TestRenderOrderConfirmation_EscapesCustomerInput(t *testing.T) {
	req := &model.CheckoutRequest{
		Name:    "<script>alert(1)</script>",
		Mobile:  "1",
		Address: "a",
	}

	html, err := RenderOrderConfirmation("Cottage Store", req)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestResendSender_Send(t *testing.T) {
	var gotAuth string
	var gotPayload Message

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "msg-123"}`))
	}))
	defer srv.Close()

	sender := NewResendSenderWithEndpoint("re_test_key", srv.URL, zerolog.Nop())
	id, err := sender.Send(context.Background(), Message{
		From:    "orders@cottage.store",
		To:      []string{"owner@cottage.store"},
		Subject: "Order Confirmation",
		HTML:    "<p>hello</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "msg-123", id)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "orders@cottage.store", gotPayload.From)
	assert.Equal(t, []string{"owner@cottage.store"}, gotPayload.To)
}

func TestResendSender_ProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "invalid from address"}`))
	}))
	defer srv.Close()

	sender := NewResendSenderWithEndpoint("re_test_key", srv.URL, zerolog.Nop())
	id, err := sender.Send(context.Background(), Message{From: "bad", To: []string{"x"}})

	assert.Empty(t, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestResendSender_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	sender := NewResendSenderWithEndpoint("re_test_key", srv.URL, zerolog.Nop())
	_, err := sender.Send(context.Background(), Message{})
	require.Error(t, err)
}
