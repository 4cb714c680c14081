package usecase

import (
	"context"
	"fmt"
	"payment_orchestrator/internal/domain/entities"

	"github.com/stripe/stripe-go/v82"
)

// connectedRetrievePolicy decides when a connected-account customer is retrieved
// instead of created. The two policies differ on purpose per operation.
type connectedRetrievePolicy int

const (
	// retrieveWhenConnectedGiven: payOrder, createPayment.
	retrieveWhenConnectedGiven connectedRetrievePolicy = iota
	// retrieveWhenBothGiven: registerOrder, attachCardToCustomer.
	retrieveWhenBothGiven
)

func (p connectedRetrievePolicy) shouldRetrieve(o entities.Order) bool {
	switch p {
	case retrieveWhenBothGiven:
		return o.Customer != "" && o.ConnectedAccountCustomer != ""
	default:
		return o.ConnectedAccountCustomer != ""
	}
}

type resolvedCustomers struct {
	platform  *stripe.Customer
	connected *stripe.Customer
}

// resolvePlatformCustomer retrieves order.Customer when given, otherwise creates
// a customer from order.CustomerData.
func (g *StripeGateway) resolvePlatformCustomer(ctx context.Context, o entities.Order) entities.Result[*stripe.Customer] {
	if o.Customer != "" {
		return rejectDeleted(g.retrieveCustomer(ctx, o.Customer), o.Customer)
	}
	return g.createCustomer(ctx, o.CustomerData)
}

func (g *StripeGateway) resolveConnectedAccountCustomer(ctx context.Context, o entities.Order, policy connectedRetrievePolicy) entities.Result[*stripe.Customer] {
	if policy.shouldRetrieve(o) {
		return rejectDeleted(g.retrieveConnectedAccountCustomer(ctx, o.ConnectedAccountCustomer, o.StripeAccount), o.ConnectedAccountCustomer)
	}
	return g.createConnectedAccountCustomer(ctx, o.CustomerData, o.StripeAccount)
}

// resolveCustomers runs platform then connected-account resolution. The connected
// account is never touched when the platform step fails.
func (g *StripeGateway) resolveCustomers(ctx context.Context, o entities.Order, policy connectedRetrievePolicy) entities.Result[resolvedCustomers] {
	return entities.Then(g.resolvePlatformCustomer(ctx, o), func(platform *stripe.Customer) entities.Result[resolvedCustomers] {
		connected := g.resolveConnectedAccountCustomer(ctx, o, policy)
		return entities.Then(connected, func(c *stripe.Customer) entities.Result[resolvedCustomers] {
			return entities.Success(resolvedCustomers{platform: platform, connected: c}).
				WithCustomerForConnectedAccount(c.ID)
		}).WithCustomer(platform.ID)
	})
}

// rejectDeleted turns a successful retrieve of a deleted customer into a
// customers.retrieve failure.
func rejectDeleted(r entities.Result[*stripe.Customer], customerID string) entities.Result[*stripe.Customer] {
	return entities.Then(r, func(c *stripe.Customer) entities.Result[*stripe.Customer] {
		if c == nil || c.Deleted {
			return entities.Failure[*stripe.Customer](entities.StepCustomersRetrieve, fmt.Errorf("%w: %s", entities.ErrCustomerDeleted, customerID))
		}
		return entities.Success(c)
	})
}
