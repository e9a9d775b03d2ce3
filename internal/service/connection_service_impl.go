package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/repository"
)

type connectionService struct {
	connections repository.ConnectionRepo
	clients     repository.ClientRepo
}

func NewConnectionService(connections repository.ConnectionRepo, clients repository.ClientRepo) ConnectionService {
	return &connectionService{connections: connections, clients: clients}
}

func (s *connectionService) Connect(ctx context.Context, conn *domain.SocialConnection) error {
	if conn.ClientID == "" {
		return fmt.Errorf("connection client is required")
	}
	if !domain.ValidPlatforms[string(conn.Platform)] {
		return fmt.Errorf("unknown platform %q", conn.Platform)
	}
	if conn.AccountName == "" {
		return fmt.Errorf("connection account name is required")
	}
	if _, err := s.clients.GetByID(ctx, conn.ClientID); err != nil {
		return err
	}

	// One connection per client and platform; reconnecting replaces it.
	existing, err := s.connections.ListByClient(ctx, conn.ClientID)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.Platform == conn.Platform {
			e.AccountName = conn.AccountName
			e.AccessToken = conn.AccessToken
			e.RefreshToken = conn.RefreshToken
			e.Active = true
			e.ExpiresAt = conn.ExpiresAt
			e.UpdatedAt = time.Now().UTC()
			*conn = *e
			return s.connections.Update(ctx, e)
		}
	}

	if conn.ID == "" {
		conn.ID = uuid.New().String()
	}
	conn.Active = true
	now := time.Now().UTC()
	conn.CreatedAt = now
	conn.UpdatedAt = now
	return s.connections.Create(ctx, conn)
}

func (s *connectionService) List(ctx context.Context, clientID string) ([]*domain.SocialConnection, error) {
	return s.connections.ListByClient(ctx, clientID)
}

func (s *connectionService) Disconnect(ctx context.Context, id string) error {
	return s.connections.Delete(ctx, id)
}

// Refresh reactivates a connection after the external token flow renewed it.
// Empty token strings keep the stored values.
func (s *connectionService) Refresh(ctx context.Context, id string, renewed domain.TokenRenewal) error {
	conn, err := s.connections.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if renewed.AccessToken != "" {
		conn.AccessToken = renewed.AccessToken
	}
	if renewed.RefreshToken != "" {
		conn.RefreshToken = renewed.RefreshToken
	}
	conn.Active = true
	conn.ExpiresAt = renewed.ExpiresAt
	conn.UpdatedAt = time.Now().UTC()
	return s.connections.Update(ctx, conn)
}
