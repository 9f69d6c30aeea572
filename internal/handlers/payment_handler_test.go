package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateIntent(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantAmount int64
	}{
		{"whole dollars", `{"price":10}`, 1000},
		{"with cents", `{"price":10.5}`, 1050},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotAmount int64
			mock := &mockIntentCreator{
				CreateIntentFunc: func(amount int64) (string, error) {
					gotAmount = amount
					return "pi_secret_123", nil
				},
			}
			h := NewPaymentHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			h.CreateIntent(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if gotAmount != tc.wantAmount {
				t.Errorf("expected amount %d, got %d", tc.wantAmount, gotAmount)
			}

			var resp map[string]string
			json.Unmarshal(rec.Body.Bytes(), &resp)
			if resp["clientSecret"] != "pi_secret_123" {
				t.Errorf("expected client secret in response, got %v", resp)
			}
		})
	}
}

func TestCreateIntentRejectsBadPrice(t *testing.T) {
	for _, body := range []string{`{"price":-5}`, `{"price":0}`, `{}`, `{"price":"ten"}`} {
		mock := &mockIntentCreator{
			CreateIntentFunc: func(amount int64) (string, error) {
				t.Errorf("CreateIntent should not be called for body %s", body)
				return "", nil
			},
		}
		h := NewPaymentHandler(mock)

		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		h.CreateIntent(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestCreateIntentUpstreamFailure(t *testing.T) {
	mock := &mockIntentCreator{
		CreateIntentFunc: func(amount int64) (string, error) {
			return "", errMockStore
		},
	}
	h := NewPaymentHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{"price":10}`))
	rec := httptest.NewRecorder()
	h.CreateIntent(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
