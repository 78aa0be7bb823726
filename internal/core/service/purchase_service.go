package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// PurchaseService executes purchase intents against the order service and
// reconciles the local snapshot optimistically. Each invocation is
// independent: no request state is shared between concurrent calls, and no
// failure class is retried automatically — a blind retry could decrement
// real inventory twice.
type PurchaseService struct {
	orders   ports.OrderGateway
	sessions ports.SessionService
	snapshot ports.SnapshotReconciler
	log      zerolog.Logger
}

func NewPurchaseService(orders ports.OrderGateway, sessions ports.SessionService, snapshot ports.SnapshotReconciler, log zerolog.Logger) *PurchaseService {
	return &PurchaseService{orders: orders, sessions: sessions, snapshot: snapshot, log: log}
}

// Purchase runs the precondition checks in order, short-circuiting before
// any network call, then issues exactly one authenticated call.
func (s *PurchaseService) Purchase(ctx context.Context, session *domain.Session, intent domain.PurchaseIntent) (*domain.Receipt, error) {
	if domain.Evaluate(session, domain.ActionPurchase) != domain.Allow {
		return nil, domain.ErrUnauthorized
	}
	if intent.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	receipt, err := s.orders.Purchase(ctx, session.Credential, intent.ProductID, intent.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// The credential was valid when we dispatched; the server says
			// otherwise now.
			s.sessions.InvalidateCredential(ctx, session.Credential)
		}
		s.log.Warn().Err(err).Int64("product_id", intent.ProductID).Int("quantity", intent.Quantity).Msg("purchase failed")
		return nil, err
	}

	s.snapshot.ApplyPurchase(intent.ProductID, intent.Quantity)

	s.log.Info().Int64("product_id", intent.ProductID).Int("quantity", intent.Quantity).Int64("order_id", receipt.OrderID).Msg("purchase confirmed")

	return receipt, nil
}

// MyOrders lists the current customer's purchases.
func (s *PurchaseService) MyOrders(ctx context.Context, session *domain.Session) ([]domain.Order, error) {
	if domain.Evaluate(session, domain.ActionViewOwnOrders) != domain.Allow {
		return nil, domain.ErrUnauthorized
	}

	orders, err := s.orders.ListMine(ctx, session.Credential)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.sessions.InvalidateCredential(ctx, session.Credential)
		}
		return nil, err
	}
	return orders, nil
}
