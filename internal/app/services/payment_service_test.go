package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
)

type fakeTxnStatusStore struct {
	statuses map[string]models.TransactionStatus
	updates  int
}

func (f *fakeTxnStatusStore) UpdateStatus(_ context.Context, id string, status models.TransactionStatus) error {
	if _, ok := f.statuses[id]; !ok {
		return apperrors.ErrTransactionNotFound
	}
	f.statuses[id] = status
	f.updates++
	return nil
}

func newPaymentFixture(initial models.TransactionStatus) (*PaymentService, *fakeTxnStatusStore) {
	store := &fakeTxnStatusStore{statuses: map[string]models.TransactionStatus{
		"order-1": initial,
	}}
	return NewPaymentService(store, testLogger()), store
}

func TestCallbackSettlementMarksSuccess(t *testing.T) {
	svc, store := newPaymentFixture(models.TransactionPending)

	err := svc.HandleCallback(context.Background(), &dto.PaymentCallbackRequest{
		OrderID:           "order-1",
		TransactionStatus: "settlement",
	})
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}
	if got := store.statuses["order-1"]; got != models.TransactionSuccess {
		t.Errorf("status = %s, want success", got)
	}
}

func TestCallbackCaptureMarksSuccess(t *testing.T) {
	svc, store := newPaymentFixture(models.TransactionPending)

	err := svc.HandleCallback(context.Background(), &dto.PaymentCallbackRequest{
		OrderID:           "order-1",
		TransactionStatus: "capture",
	})
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}
	if got := store.statuses["order-1"]; got != models.TransactionSuccess {
		t.Errorf("status = %s, want success", got)
	}
}

func TestCallbackExpireMarksFailed(t *testing.T) {
	svc, store := newPaymentFixture(models.TransactionPending)

	err := svc.HandleCallback(context.Background(), &dto.PaymentCallbackRequest{
		OrderID:           "order-1",
		TransactionStatus: "expire",
	})
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}
	if got := store.statuses["order-1"]; got != models.TransactionFailed {
		t.Errorf("status = %s, want failed", got)
	}
}

func TestCallbackUnknownCodeIsNoOp(t *testing.T) {
	svc, store := newPaymentFixture(models.TransactionPending)

	err := svc.HandleCallback(context.Background(), &dto.PaymentCallbackRequest{
		OrderID:           "order-1",
		TransactionStatus: "refund",
	})
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}
	if store.updates != 0 {
		t.Errorf("expected no store updates, got %d", store.updates)
	}
	if got := store.statuses["order-1"]; got != models.TransactionPending {
		t.Errorf("status = %s, want pending", got)
	}
}

func TestCallbackUnknownCodeSkipsLookup(t *testing.T) {
	// Unknown codes are acknowledged even for order ids we have never seen.
	svc, _ := newPaymentFixture(models.TransactionPending)

	err := svc.HandleCallback(context.Background(), &dto.PaymentCallbackRequest{
		OrderID:           "no-such-order",
		TransactionStatus: "refund",
	})
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}
}

func TestCallbackUnknownOrder(t *testing.T) {
	svc, _ := newPaymentFixture(models.TransactionPending)

	err := svc.HandleCallback(context.Background(), &dto.PaymentCallbackRequest{
		OrderID:           "no-such-order",
		TransactionStatus: "settlement",
	})
	if !errors.Is(err, apperrors.ErrTransactionNotFound) {
		t.Fatalf("HandleCallback error = %v, want ErrTransactionNotFound", err)
	}
}

func TestCallbackOverwritesTerminalStatus(t *testing.T) {
	// Notifications may arrive out of order and the last one wins.
	svc, store := newPaymentFixture(models.TransactionSuccess)

	err := svc.HandleCallback(context.Background(), &dto.PaymentCallbackRequest{
		OrderID:           "order-1",
		TransactionStatus: "expire",
	})
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}
	if got := store.statuses["order-1"]; got != models.TransactionFailed {
		t.Errorf("status = %s, want failed", got)
	}
}
