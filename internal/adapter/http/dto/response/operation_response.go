package response

import (
	"errors"

	"payment_orchestrator/internal/domain/entities"

	"github.com/stripe/stripe-go/v82"
)

// ErrorBody describes the failing step's error. Code, Type, DeclineCode and
// Param are only set when the processor returned a structured error.
type ErrorBody struct {
	Message     string `json:"message"`
	Code        string `json:"code,omitempty"`
	Type        string `json:"type,omitempty"`
	DeclineCode string `json:"declineCode,omitempty"`
	Param       string `json:"param,omitempty"`
	RequestID   string `json:"requestId,omitempty"`
}

// OperationResponse is the wire form of an envelope.
type OperationResponse struct {
	HasError                    bool       `json:"hasError"`
	Data                        any        `json:"data,omitempty"`
	Err                         *ErrorBody `json:"err,omitempty"`
	ErrorStep                   string     `json:"errorStep,omitempty"`
	Customer                    string     `json:"customer,omitempty"`
	CustomerForConnectedAccount string     `json:"customerForConnectedAccount,omitempty"`
	ReconciliationID            string     `json:"reconciliationId,omitempty"`
}

func FromResult[T any](r entities.Result[T]) OperationResponse {
	res := fromOutcome(r)
	if data, ok := r.Data(); ok {
		res.Data = data
	}
	return res
}

func fromOutcome(o entities.Outcome) OperationResponse {
	c := o.Correlation()
	res := OperationResponse{
		HasError:                    o.HasError(),
		Customer:                    c.Customer,
		CustomerForConnectedAccount: c.CustomerForConnectedAccount,
	}
	if o.HasError() {
		res.ErrorStep = string(o.ErrorStep())
		res.Err = NewErrorBody(o.Err())
	}
	return res
}

func NewErrorBody(err error) *ErrorBody {
	if err == nil {
		return nil
	}
	var se *stripe.Error
	if errors.As(err, &se) {
		return &ErrorBody{
			Message:     se.Msg,
			Code:        string(se.Code),
			Type:        string(se.Type),
			DeclineCode: string(se.DeclineCode),
			Param:       se.Param,
			RequestID:   se.RequestID,
		}
	}
	return &ErrorBody{Message: err.Error()}
}
