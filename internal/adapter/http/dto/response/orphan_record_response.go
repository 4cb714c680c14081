package response

import (
	"time"

	"payment_orchestrator/internal/domain/entities"
)

type OrphanRecordResponse struct {
	ID                          string    `json:"id"`
	Operation                   string    `json:"operation"`
	ErrorStep                   string    `json:"errorStep"`
	ErrorMessage                string    `json:"errorMessage,omitempty"`
	Customer                    string    `json:"customer,omitempty"`
	CustomerForConnectedAccount string    `json:"customerForConnectedAccount,omitempty"`
	StripeAccount               string    `json:"stripeAccount,omitempty"`
	CreatedAt                   time.Time `json:"createdAt"`
}

func FromOrphanRecord(r entities.OrphanRecord) OrphanRecordResponse {
	return OrphanRecordResponse{
		ID:                          r.ID,
		Operation:                   r.Operation,
		ErrorStep:                   string(r.ErrorStep),
		ErrorMessage:                r.ErrorMessage,
		Customer:                    r.Customer,
		CustomerForConnectedAccount: r.CustomerForConnectedAccount,
		StripeAccount:               r.StripeAccount,
		CreatedAt:                   r.CreatedAt,
	}
}

func FromOrphanRecords(records []entities.OrphanRecord) []OrphanRecordResponse {
	out := make([]OrphanRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromOrphanRecord(r))
	}
	return out
}
