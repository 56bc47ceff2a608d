package connection

import (
	"context"
	"errors"
	"fmt"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
)

type ConnectionUseCase struct {
	connectionRepo repository.ConnectionRepository
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
}

func NewConnectionUseCase(
	connectionRepo repository.ConnectionRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) *ConnectionUseCase {
	return &ConnectionUseCase{
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
		profileRepo:    profileRepo,
	}
}

// RequestResult reports whether a new edge was created. A duplicate
// request is a no-op, not an error.
type RequestResult struct {
	Connection     *domain.Connection `json:"connection"`
	AlreadyExisted bool               `json:"already_existed"`
}

// Request creates a pending connection from requester to receiver. The
// store does not enforce unordered-pair uniqueness, so the edge is
// checked in both directions before insert.
func (uc *ConnectionUseCase) Request(ctx context.Context, eventID, requesterID, receiverID string) (*RequestResult, error) {
	if requesterID == receiverID {
		return nil, domain.ErrSelfConnection
	}

	existing, err := uc.connectionRepo.GetBetween(ctx, eventID, requesterID, receiverID)
	if err == nil {
		return &RequestResult{Connection: existing, AlreadyExisted: true}, nil
	}
	if !errors.Is(err, domain.ErrConnectionNotFound) {
		return nil, fmt.Errorf("failed to check existing connection: %w", err)
	}

	conn := &domain.Connection{
		EventID:     eventID,
		RequesterID: requesterID,
		ReceiverID:  receiverID,
		Status:      domain.ConnectionStatusPending,
	}
	if err := uc.connectionRepo.Create(ctx, conn); err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}
	return &RequestResult{Connection: conn}, nil
}

// Accept transitions a pending connection to accepted. Only the
// receiver of the request may accept it; accepting twice is a no-op.
func (uc *ConnectionUseCase) Accept(ctx context.Context, connectionID, userID string) (*domain.Connection, error) {
	conn, err := uc.connectionRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.ReceiverID != userID {
		return nil, domain.ErrNotConnectionReceiver
	}
	if conn.Status == domain.ConnectionStatusAccepted {
		return conn, nil
	}
	if err := uc.connectionRepo.UpdateStatus(ctx, conn.ID, domain.ConnectionStatusAccepted); err != nil {
		return nil, fmt.Errorf("failed to accept connection: %w", err)
	}
	conn.Status = domain.ConnectionStatusAccepted
	return conn, nil
}

// ConnectionView is one row in the connections list, annotated with the
// other participant and the viewer's role in the edge.
type ConnectionView struct {
	ID             string  `json:"id"`
	Status         string  `json:"status"`
	PartnerID      string  `json:"partner_id"`
	PartnerName    string  `json:"partner_name"`
	PartnerImage   *string `json:"partner_image"`
	PartnerRole    string  `json:"partner_role"`
	PartnerCompany string  `json:"partner_company"`
	IsIncoming     bool    `json:"is_incoming"`
}

// List returns the user's connections in the event with partner details.
// Edges whose partner account has vanished are skipped.
func (uc *ConnectionUseCase) List(ctx context.Context, eventID, userID string) ([]ConnectionView, error) {
	conns, err := uc.connectionRepo.ListForUser(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	views := make([]ConnectionView, 0, len(conns))
	for _, conn := range conns {
		partnerID, ok := conn.OtherUserID(userID)
		if !ok {
			continue
		}
		partner, err := uc.userRepo.GetByID(ctx, partnerID)
		if err != nil {
			continue
		}

		view := ConnectionView{
			ID:           conn.ID,
			Status:       conn.Status,
			PartnerID:    partnerID,
			PartnerName:  partner.Name,
			PartnerImage: partner.Image,
			IsIncoming:   conn.ReceiverID == userID,
		}
		if prof, err := uc.profileRepo.GetByUserAndEvent(ctx, partnerID, eventID); err == nil {
			view.PartnerRole = prof.Role()
			view.PartnerCompany = prof.CompanyName()
		}
		views = append(views, view)
	}
	return views, nil
}
