package entities

import "errors"

// Step names the remote capability that produced a failure.
//
// The vocabulary is fixed: callers switch on these values to diagnose how far a
// multi-call operation progressed before it stopped.
type Step string

const (
	StepCustomersRetrieve       Step = "customers.retrieve"
	StepCustomersCreate         Step = "customers.create"
	StepSetupIntentsCreate      Step = "setupIntents.create"
	StepSetupIntentsRetrieve    Step = "setupIntents.retrieve"
	StepPaymentMethodsCreate    Step = "paymentMethods.create"
	StepPaymentMethodsAttach    Step = "paymentMethods.attach"
	StepPaymentMethodsDetach    Step = "paymentMethods.detach"
	StepPaymentMethodsRetrieve  Step = "paymentMethods.retrieve"
	StepPaymentIntentsCreate    Step = "paymentIntents.create"
	StepPaymentIntentsRetrieve  Step = "paymentIntents.retrieve"
	StepPaymentIntentsCancel    Step = "paymentIntents.cancel"
	StepPaymentIntentsCapture   Step = "paymentIntents.capture"
	StepRefundsCreate           Step = "refunds.create"
	StepAccountsCreateLoginLink Step = "accounts.createLoginLink"
	StepTokensCreate            Step = "tokens.create"
)

var (
	ErrCustomerDeleted = errors.New("customer is deleted")
	errUnknownFailure  = errors.New("unknown failure")
)

// Correlation carries the customer identifiers resolved by a composite operation.
//
// They are stamped on the final envelope whatever its outcome so that callers can
// reconcile remote resources left behind by a failed pipeline.
type Correlation struct {
	Customer                    string `json:"customer,omitempty"`
	CustomerForConnectedAccount string `json:"customerForConnectedAccount,omitempty"`
}

// Empty reports whether no identifier has been stamped yet.
func (c Correlation) Empty() bool {
	return c.Customer == "" && c.CustomerForConnectedAccount == ""
}

// Outcome is the type-erased view of a Result, used by layers that only care
// whether an operation failed and where.
type Outcome interface {
	HasError() bool
	Err() error
	ErrorStep() Step
	Correlation() Correlation
}

// Result is the envelope returned by every gateway operation.
//
// A Result is either a success carrying data or a failure carrying the cause and
// the step that produced it. Data is unreachable on a failure.
type Result[T any] struct {
	data        T
	err         error
	step        Step
	correlation Correlation
}

var _ Outcome = Result[struct{}]{}

func Success[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Failure builds a failed envelope. A nil cause is replaced so that HasError
// always agrees with Err.
func Failure[T any](step Step, err error) Result[T] {
	if err == nil {
		err = errUnknownFailure
	}
	return Result[T]{err: err, step: step}
}

func (r Result[T]) HasError() bool { return r.err != nil }

func (r Result[T]) Err() error { return r.err }

func (r Result[T]) ErrorStep() Step { return r.step }

func (r Result[T]) Correlation() Correlation { return r.correlation }

// Data returns the payload and true on success, the zero value and false otherwise.
func (r Result[T]) Data() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.data, true
}

func (r Result[T]) WithCustomer(id string) Result[T] {
	if id != "" {
		r.correlation.Customer = id
	}
	return r
}

func (r Result[T]) WithCustomerForConnectedAccount(id string) Result[T] {
	if id != "" {
		r.correlation.CustomerForConnectedAccount = id
	}
	return r
}

// Then runs next with the data of r when r succeeded, and otherwise carries the
// failure forward without calling next. Correlation ids stamped on r survive
// into the returned envelope unless next overwrites them.
func Then[A, B any](r Result[A], next func(A) Result[B]) Result[B] {
	if r.err != nil {
		return Result[B]{err: r.err, step: r.step, correlation: r.correlation}
	}
	out := next(r.data)
	if out.correlation.Customer == "" {
		out.correlation.Customer = r.correlation.Customer
	}
	if out.correlation.CustomerForConnectedAccount == "" {
		out.correlation.CustomerForConnectedAccount = r.correlation.CustomerForConnectedAccount
	}
	return out
}
