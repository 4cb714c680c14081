package entities

import "time"

// OrphanRecord is a ledger entry written when a composite operation fails after
// it had already resolved (and possibly created) customers on the processor.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (stripe_account-index): stripe_account
//
// Nothing is rolled back automatically; operators use these records to clean up
// or reuse the customers out-of-band.
type OrphanRecord struct {
	ID                          string    `json:"id"`
	Operation                   string    `json:"operation"`
	ErrorStep                   Step      `json:"error_step"`
	ErrorMessage                string    `json:"error_message,omitempty"`
	Customer                    string    `json:"customer,omitempty"`
	CustomerForConnectedAccount string    `json:"customer_for_connected_account,omitempty"`
	StripeAccount               string    `json:"stripe_account,omitempty"`
	CreatedAt                   time.Time `json:"created_at"`
}
