package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/techconnect/backend/internal/domain"
)

type fakeProfileRepo struct {
	profiles []*domain.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	p.ID = uuid.NewString()
	f.profiles = append(f.profiles, p)
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	for i, existing := range f.profiles {
		if existing.ID == p.ID {
			f.profiles[i] = p
			return nil
		}
	}
	return domain.ErrProfileNotFound
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
	p, err := f.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return err
	}
	p.IsVisible = visible
	return nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
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
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

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
	return nil, nil
}

func (f *fakeConnectionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return domain.ErrConnectionNotFound
}

func newTestUseCase(profiles *fakeProfileRepo, users *fakeUserRepo, conns *fakeConnectionRepo) *ProfileUseCase {
	if users == nil {
		users = &fakeUserRepo{users: map[string]*domain.User{}}
	}
	if conns == nil {
		conns = &fakeConnectionRepo{}
	}
	return NewProfileUseCase(profiles, users, conns)
}

func strPtr(s string) *string { return &s }

func TestSaveCreatesThenUpdatesSameProfile(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := newTestUseCase(repo, nil, nil)

	created, err := uc.Save(context.Background(), "u1", "ev1", &SaveProfileRequest{
		CurrentRole: strPtr("Engineer"),
		Skills:      []string{"Go"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.OnboardingComplete || !created.IsVisible {
		t.Errorf("created profile = %+v, want onboarded and visible", created)
	}

	updated, err := uc.Save(context.Background(), "u1", "ev1", &SaveProfileRequest{
		CurrentRole: strPtr("CTO"),
		Skills:      []string{"Go", "Rust"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("update created a second profile: %s vs %s", updated.ID, created.ID)
	}
	if len(repo.profiles) != 1 {
		t.Errorf("store holds %d profiles for the pair, want 1", len(repo.profiles))
	}
	if updated.Role() != "CTO" {
		t.Errorf("role = %q, want CTO", updated.Role())
	}
}

func TestSaveSeparateProfilesPerEvent(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := newTestUseCase(repo, nil, nil)

	if _, err := uc.Save(context.Background(), "u1", "ev1", &SaveProfileRequest{}); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Save(context.Background(), "u1", "ev2", &SaveProfileRequest{}); err != nil {
		t.Fatal(err)
	}
	if len(repo.profiles) != 2 {
		t.Errorf("store holds %d profiles, want one per event", len(repo.profiles))
	}
}

func attendeeFixture(t *testing.T) (*ProfileUseCase, *fakeConnectionRepo, string) {
	t.Helper()

	profiles := &fakeProfileRepo{}
	users := &fakeUserRepo{users: map[string]*domain.User{}}
	conns := &fakeConnectionRepo{}
	uc := newTestUseCase(profiles, users, conns)

	bob := &domain.User{Name: "Bob", Email: "bob@example.com"}
	if err := users.Create(context.Background(), bob); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Save(context.Background(), bob.ID, "ev1", &SaveProfileRequest{
		AboutMe:     strPtr("Building dev tools"),
		CurrentRole: strPtr("Engineer"),
		Company:     strPtr("Acme"),
		Skills:      []string{"Go"},
		Interests:   []string{"Startups"},
		LookingFor:  []string{"Co-founders"},
	}); err != nil {
		t.Fatal(err)
	}
	return uc, conns, bob.ID
}

func TestAttendeeReturnsFullCard(t *testing.T) {
	uc, conns, bobID := attendeeFixture(t)
	if err := conns.Create(context.Background(), &domain.Connection{
		EventID:     "ev1",
		RequesterID: "viewer",
		ReceiverID:  bobID,
		Status:      domain.ConnectionStatusPending,
	}); err != nil {
		t.Fatal(err)
	}

	view, err := uc.Attendee(context.Background(), "viewer", bobID, "ev1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Name != "Bob" || view.AboutMe == nil || *view.AboutMe != "Building dev tools" {
		t.Errorf("view = %+v, want Bob's card with about text", view)
	}
	if len(view.LookingFor) != 1 || view.LookingFor[0] != "Co-founders" {
		t.Errorf("looking_for = %v, want [Co-founders]", view.LookingFor)
	}
	if view.ConnectionStatus != domain.ConnectionStatusPending {
		t.Errorf("connection status = %q, want pending", view.ConnectionStatus)
	}
}

func TestAttendeeWithoutConnectionReadsNone(t *testing.T) {
	uc, _, bobID := attendeeFixture(t)

	view, err := uc.Attendee(context.Background(), "viewer", bobID, "ev1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ConnectionStatus != domain.ConnectionStatusNone {
		t.Errorf("connection status = %q, want none", view.ConnectionStatus)
	}
}

func TestAttendeeHiddenProfileIsNotFound(t *testing.T) {
	uc, _, bobID := attendeeFixture(t)
	if err := uc.SetVisibility(context.Background(), bobID, "ev1", false); err != nil {
		t.Fatal(err)
	}

	if _, err := uc.Attendee(context.Background(), "viewer", bobID, "ev1"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("got %v, want ErrProfileNotFound for a hidden profile", err)
	}
}

func TestAttendeeUnknownUserIsNotFound(t *testing.T) {
	uc, _, _ := attendeeFixture(t)

	if _, err := uc.Attendee(context.Background(), "viewer", "nobody", "ev1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}
