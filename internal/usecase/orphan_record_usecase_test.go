package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment_orchestrator/internal/domain/entities"
	mock_interfaces "payment_orchestrator/internal/usecase/interfaces/mocks"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"
)

func failedPayment(customer, connected string) entities.Result[*stripe.PaymentIntent] {
	return entities.Failure[*stripe.PaymentIntent](entities.StepPaymentIntentsCreate, errors.New("card declined")).
		WithCustomer(customer).
		WithCustomerForConnectedAccount(connected)
}

func TestOrphanRecordUseCase_Track(t *testing.T) {
	t.Run("success is not recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrphanRecordRepository(ctrl)
		uc := NewOrphanRecordUseCase(repo, nil)

		ok := entities.Success(&stripe.PaymentIntent{ID: "pi_1"}).WithCustomer("cus_1")
		_, recorded, err := uc.Track(context.Background(), "payOrder", "acct_1", ok)
		if err != nil || recorded {
			t.Fatalf("expected nothing recorded, got recorded=%v err=%v", recorded, err)
		}
	})

	t.Run("failure without correlation is not recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrphanRecordRepository(ctrl)
		uc := NewOrphanRecordUseCase(repo, nil)

		_, recorded, err := uc.Track(context.Background(), "payOrder", "acct_1", failedPayment("", ""))
		if err != nil || recorded {
			t.Fatalf("expected nothing recorded, got recorded=%v err=%v", recorded, err)
		}
	})

	t.Run("failure with correlation is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrphanRecordRepository(ctrl)
		uc := NewOrphanRecordUseCase(repo, nil)
		fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.OrphanRecord) (entities.OrphanRecord, error) {
			if r.ID == "" {
				t.Fatalf("expected generated id")
			}
			if r.Operation != "createPayment" || r.ErrorStep != entities.StepPaymentIntentsCreate {
				t.Fatalf("unexpected record: %+v", r)
			}
			if r.Customer != "cus_1" || r.CustomerForConnectedAccount != "cus_c1" || r.StripeAccount != "acct_1" {
				t.Fatalf("unexpected correlation: %+v", r)
			}
			if r.ErrorMessage != "card declined" || !r.CreatedAt.Equal(fixed) {
				t.Fatalf("unexpected message/date: %+v", r)
			}
			return r, nil
		})

		rec, recorded, err := uc.Track(context.Background(), "createPayment", "acct_1", failedPayment("cus_1", "cus_c1"))
		if err != nil || !recorded || rec.ID == "" {
			t.Fatalf("expected record, got %+v recorded=%v err=%v", rec, recorded, err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrphanRecordRepository(ctrl)
		uc := NewOrphanRecordUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.OrphanRecord{}, errors.New("ddb"))

		_, recorded, err := uc.Track(context.Background(), "payOrder", "acct_1", failedPayment("cus_1", ""))
		if err == nil || err.Error() != "ddb" || recorded {
			t.Fatalf("expected ddb error, got recorded=%v err=%v", recorded, err)
		}
	})

	t.Run("repository not configured", func(t *testing.T) {
		uc := NewOrphanRecordUseCase(nil, nil)

		_, _, err := uc.Track(context.Background(), "payOrder", "acct_1", failedPayment("cus_1", ""))
		if !errors.Is(err, ErrOrphanRepositoryNotConfigured) {
			t.Fatalf("expected ErrOrphanRepositoryNotConfigured, got %v", err)
		}
	})
}

func TestOrphanRecordUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewOrphanRecordUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOrphanRecordID) {
			t.Fatalf("expected ErrInvalidOrphanRecordID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrphanRecordRepository(ctrl)
		uc := NewOrphanRecordUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.OrphanRecord{}, nil)

		_, err := uc.GetByID(context.Background(), "rec-1")
		if !errors.Is(err, ErrOrphanRecordNotFound) {
			t.Fatalf("expected ErrOrphanRecordNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrphanRecordRepository(ctrl)
		uc := NewOrphanRecordUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.OrphanRecord{ID: "rec-1", Customer: "cus_1"}, nil)

		rec, err := uc.GetByID(context.Background(), " rec-1 ")
		if err != nil || rec.Customer != "cus_1" {
			t.Fatalf("unexpected result: %+v err=%v", rec, err)
		}
	})
}

func TestOrphanRecordUseCase_ListByStripeAccount(t *testing.T) {
	t.Run("empty account", func(t *testing.T) {
		uc := NewOrphanRecordUseCase(nil, nil)
		_, err := uc.ListByStripeAccount(context.Background(), "")
		if !errors.Is(err, ErrInvalidStripeAccount) {
			t.Fatalf("expected ErrInvalidStripeAccount, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrphanRecordRepository(ctrl)
		uc := NewOrphanRecordUseCase(repo, nil)

		repo.EXPECT().ListByStripeAccount(gomock.Any(), "acct_1").Return([]entities.OrphanRecord{{ID: "a"}, {ID: "b"}}, nil)

		recs, err := uc.ListByStripeAccount(context.Background(), "acct_1")
		if err != nil || len(recs) != 2 {
			t.Fatalf("unexpected result: %+v err=%v", recs, err)
		}
	})
}
