package meta

import (
	"context"
	"fmt"

	"github.com/greenmarket/agridash/internal/domain"
	"github.com/greenmarket/agridash/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewMetaService(store store.Store) *Service {
	return &Service{store: store}
}

// Status returns the dashboard header metadata, nil when the mart is
// empty.
func (s *Service) Status(ctx context.Context) (*domain.UpdateStatus, error) {
	status, err := s.store.UpdateStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.UpdateStatus: %w", err)
	}

	return status, nil
}
