package connection

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/techconnect/backend/internal/domain"
)

type fakeConnectionRepo struct {
	conns []*domain.Connection
}

func (f *fakeConnectionRepo) Create(ctx context.Context, conn *domain.Connection) error {
	conn.ID = uuid.NewString()
	f.conns = append(f.conns, conn)
	return nil
}

func (f *fakeConnectionRepo) GetByID(ctx context.Context, id string) (*domain.Connection, error) {
	for _, c := range f.conns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrConnectionNotFound
}

func (f *fakeConnectionRepo) GetBetween(ctx context.Context, eventID, userID, otherUserID string) (*domain.Connection, error) {
	for _, c := range f.conns {
		if c.EventID != eventID {
			continue
		}
		if (c.RequesterID == userID && c.ReceiverID == otherUserID) ||
			(c.RequesterID == otherUserID && c.ReceiverID == userID) {
			return c, nil
		}
	}
	return nil, domain.ErrConnectionNotFound
}

func (f *fakeConnectionRepo) ListForUser(ctx context.Context, eventID, userID string) ([]*domain.Connection, error) {
	var out []*domain.Connection
	for _, c := range f.conns {
		if c.EventID == eventID && c.HasUser(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeConnectionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for _, c := range f.conns {
		if c.ID == id {
			c.Status = status
			return nil
		}
	}
	return domain.ErrConnectionNotFound
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	return nil
}

type fakeProfileRepo struct {
	profiles []*domain.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	f.profiles = append(f.profiles, p)
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	return nil
}

func (f *fakeProfileRepo) GetByUserAndEvent(ctx context.Context, userID, eventID string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID && p.EventID == eventID {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) ListVisibleByEvent(ctx context.Context, eventID, excludeUserID string) ([]*domain.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) SetVisibility(ctx context.Context, userID, eventID string, visible bool) error {
	return nil
}

func newTestUseCase(repo *fakeConnectionRepo, users map[string]*domain.User, profiles []*domain.Profile) *ConnectionUseCase {
	if users == nil {
		users = map[string]*domain.User{
			"alice": {ID: "alice", Name: "Alice"},
			"bob":   {ID: "bob", Name: "Bob"},
		}
	}
	return NewConnectionUseCase(repo, &fakeUserRepo{users: users}, &fakeProfileRepo{profiles: profiles})
}

func TestRequestCreatesPendingConnection(t *testing.T) {
	repo := &fakeConnectionRepo{}
	uc := newTestUseCase(repo, nil, nil)

	result, err := uc.Request(context.Background(), "ev1", "alice", "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AlreadyExisted {
		t.Error("fresh request reported as existing")
	}
	if result.Connection.Status != domain.ConnectionStatusPending {
		t.Errorf("status = %q, want pending", result.Connection.Status)
	}
}

func TestRequestRejectsSelf(t *testing.T) {
	uc := newTestUseCase(&fakeConnectionRepo{}, nil, nil)

	_, err := uc.Request(context.Background(), "ev1", "alice", "alice")
	if !errors.Is(err, domain.ErrSelfConnection) {
		t.Fatalf("got %v, want ErrSelfConnection", err)
	}
}

func TestRequestDuplicateIsNoOpEitherDirection(t *testing.T) {
	repo := &fakeConnectionRepo{}
	uc := newTestUseCase(repo, nil, nil)

	first, err := uc.Request(context.Background(), "ev1", "alice", "bob")
	if err != nil {
		t.Fatal(err)
	}

	// Same direction.
	dup, err := uc.Request(context.Background(), "ev1", "alice", "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dup.AlreadyExisted || dup.Connection.ID != first.Connection.ID {
		t.Errorf("duplicate request = %+v, want existing connection", dup)
	}

	// Reverse direction still hits the same edge.
	rev, err := uc.Request(context.Background(), "ev1", "bob", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rev.AlreadyExisted || rev.Connection.ID != first.Connection.ID {
		t.Errorf("reverse request = %+v, want existing connection", rev)
	}
	if len(repo.conns) != 1 {
		t.Errorf("store holds %d connections, want 1", len(repo.conns))
	}
}

func TestAcceptOnlyByReceiver(t *testing.T) {
	repo := &fakeConnectionRepo{}
	uc := newTestUseCase(repo, nil, nil)

	result, err := uc.Request(context.Background(), "ev1", "alice", "bob")
	if err != nil {
		t.Fatal(err)
	}
	id := result.Connection.ID

	if _, err := uc.Accept(context.Background(), id, "alice"); !errors.Is(err, domain.ErrNotConnectionReceiver) {
		t.Fatalf("requester accept: got %v, want ErrNotConnectionReceiver", err)
	}

	conn, err := uc.Accept(context.Background(), id, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conn.Status != domain.ConnectionStatusAccepted {
		t.Errorf("status = %q, want accepted", conn.Status)
	}

	// Idempotent.
	if _, err := uc.Accept(context.Background(), id, "bob"); err != nil {
		t.Errorf("second accept: unexpected error: %v", err)
	}
}

func TestListAnnotatesPartnerDetails(t *testing.T) {
	repo := &fakeConnectionRepo{}
	role := "Engineer"
	company := "Acme"
	profiles := []*domain.Profile{
		{UserID: "bob", EventID: "ev1", CurrentRole: &role, Company: &company},
	}
	uc := newTestUseCase(repo, nil, profiles)

	if _, err := uc.Request(context.Background(), "ev1", "alice", "bob"); err != nil {
		t.Fatal(err)
	}

	views, err := uc.List(context.Background(), "ev1", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d views, want 1", len(views))
	}
	v := views[0]
	if v.PartnerID != "bob" || v.PartnerName != "Bob" {
		t.Errorf("partner = %q/%q, want bob/Bob", v.PartnerID, v.PartnerName)
	}
	if v.PartnerRole != "Engineer" || v.PartnerCompany != "Acme" {
		t.Errorf("partner details = %q/%q, want Engineer/Acme", v.PartnerRole, v.PartnerCompany)
	}
	if v.IsIncoming {
		t.Error("outgoing request marked incoming for requester")
	}

	// Same edge seen by the receiver.
	views, err = uc.List(context.Background(), "ev1", "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 || !views[0].IsIncoming {
		t.Errorf("receiver view = %+v, want incoming edge", views)
	}
}

func TestListSkipsVanishedPartner(t *testing.T) {
	repo := &fakeConnectionRepo{}
	users := map[string]*domain.User{
		"alice": {ID: "alice", Name: "Alice"},
	}
	uc := newTestUseCase(repo, users, nil)

	if _, err := uc.Request(context.Background(), "ev1", "alice", "ghost"); err != nil {
		t.Fatal(err)
	}

	views, err := uc.List(context.Background(), "ev1", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("got %d views, want 0 for vanished partner", len(views))
	}
}
