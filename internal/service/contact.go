package service

import (
	"context"
	"log"
	"strings"

	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/domain"
)

type ContactService struct {
	repo  ContactRepository
	cache MarkerCache
}

func NewContactService(repo ContactRepository, cache MarkerCache) *ContactService {
	return &ContactService{repo: repo, cache: cache}
}

// Submit stores a contact message. A Redis marker keyed by the sender's
// email suppresses rapid resubmissions; the marker itself is best-effort.
func (s *ContactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Message) == "" {
		return domain.ErrInvalidContact
	}

	var key string
	if s.cache != nil {
		key = s.cache.ContactMarkerKey(msg.Email)
		exists, err := s.cache.Exists(ctx, key)
		if err != nil {
			log.Printf("[contact-svc] marker lookup failed: %v", err)
		} else if exists {
			return domain.ErrDuplicateContact
		}
	}

	if err := s.repo.InsertContact(msg); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.SetMarker(ctx, key); err != nil {
			log.Printf("[contact-svc] failed to set marker: %v", err)
		}
	}
	return nil
}

var _ ContactServiceInterface = (*ContactService)(nil)
