package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// AdminService executes catalog create/update for an admin session. Unlike
// purchases, admin edits touch the snapshot only after the server confirms:
// they are infrequent, and their correctness matters more than perceived
// latency.
type AdminService struct {
	catalog  ports.CatalogGateway
	sessions ports.SessionService
	snapshot ports.SnapshotReconciler
	log      zerolog.Logger
}

func NewAdminService(catalog ports.CatalogGateway, sessions ports.SessionService, snapshot ports.SnapshotReconciler, log zerolog.Logger) *AdminService {
	return &AdminService{catalog: catalog, sessions: sessions, snapshot: snapshot, log: log}
}

// Save creates the draft when it has no id, updates it otherwise. Local
// validation failures never reach the network.
func (s *AdminService) Save(ctx context.Context, session *domain.Session, draft domain.Product) (*domain.Product, error) {
	if domain.Evaluate(session, domain.ActionManageCatalog) != domain.Allow {
		return nil, domain.ErrUnauthorized
	}

	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	var (
		saved *domain.Product
		err   error
	)
	if draft.ID == 0 {
		saved, err = s.catalog.Create(ctx, session.Credential, draft)
	} else {
		saved, err = s.catalog.Update(ctx, session.Credential, draft)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.sessions.InvalidateCredential(ctx, session.Credential)
		}
		s.log.Warn().Err(err).Int64("product_id", draft.ID).Msg("product save failed")
		return nil, err
	}

	// The server response is authoritative, including the assigned id on
	// creates.
	s.snapshot.Upsert(*saved)

	s.log.Info().Int64("product_id", saved.ID).Str("name", saved.Name).Msg("product saved")

	return saved, nil
}

func validateDraft(draft domain.Product) error {
	if strings.TrimSpace(draft.Name) == "" {
		return &domain.InvalidInputError{Field: "name", Reason: "must not be empty"}
	}
	if draft.Price.IsNegative() {
		return &domain.InvalidInputError{Field: "price", Reason: "must not be negative"}
	}
	if draft.Stock < 0 {
		return &domain.InvalidInputError{Field: "stock", Reason: "must not be negative"}
	}
	return nil
}
