package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:    baseURL,
		AuthString: "c2VydmVyLWtleTo=",
		FinishURL:  "http://localhost:5173/success-checkout",
		Timeout:    2 * time.Second,
	}, zerolog.Nop())
}

func TestCreateCheckout(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":        "snap-token",
			"redirect_url": "https://gateway.test/redirect/snap-token",
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)

	url, err := client.CreateCheckout(context.Background(), "order-42", 280000, "alice@test.dev")
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}
	if url != "https://gateway.test/redirect/snap-token" {
		t.Errorf("redirect URL = %s", url)
	}
	if gotAuth != "Basic c2VydmVyLWtleTo=" {
		t.Errorf("Authorization = %s", gotAuth)
	}

	details, ok := gotBody["transaction_details"].(map[string]any)
	if !ok {
		t.Fatalf("missing transaction_details in %v", gotBody)
	}
	if details["order_id"] != "order-42" {
		t.Errorf("order_id = %v", details["order_id"])
	}
	if details["gross_amount"] != float64(280000) {
		t.Errorf("gross_amount = %v", details["gross_amount"])
	}
}

func TestCreateCheckoutErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_messages":["unauthorized"]}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	if _, err := newTestClient(ts.URL).CreateCheckout(context.Background(), "order-42", 280000, "a@b.c"); err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
}

func TestCreateCheckoutMissingRedirectURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "snap-token"})
	}))
	defer ts.Close()

	if _, err := newTestClient(ts.URL).CreateCheckout(context.Background(), "order-42", 280000, "a@b.c"); err == nil {
		t.Fatal("expected an error when the response has no redirect URL")
	}
}

func TestCreateCheckoutUnreachableGateway(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	if _, err := newTestClient(ts.URL).CreateCheckout(context.Background(), "order-42", 280000, "a@b.c"); err == nil {
		t.Fatal("expected an error for an unreachable gateway")
	}
}
