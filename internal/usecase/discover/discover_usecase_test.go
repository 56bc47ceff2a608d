package discover

import (
	"context"
	"testing"

	"github.com/techconnect/backend/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

type fakeProfileRepo struct {
	profiles []*domain.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }
func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return nil }
func (f *fakeProfileRepo) SetVisibility(ctx context.Context, userID, eventID string, visible bool) error {
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
	var out []*domain.Profile
	for _, p := range f.profiles {
		if p.EventID == eventID && p.UserID != excludeUserID && p.IsVisible && p.OnboardingComplete {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeConnectionRepo struct {
	conns []*domain.Connection
}

func (f *fakeConnectionRepo) Create(ctx context.Context, c *domain.Connection) error { return nil }
func (f *fakeConnectionRepo) GetByID(ctx context.Context, id string) (*domain.Connection, error) {
	return nil, domain.ErrConnectionNotFound
}
func (f *fakeConnectionRepo) GetBetween(ctx context.Context, eventID, userID, otherUserID string) (*domain.Connection, error) {
	return nil, domain.ErrConnectionNotFound
}
func (f *fakeConnectionRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (f *fakeConnectionRepo) ListForUser(ctx context.Context, eventID, userID string) ([]*domain.Connection, error) {
	var out []*domain.Connection
	for _, c := range f.conns {
		if c.EventID == eventID && c.HasUser(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

const testEvent = "ev1"

func strPtr(s string) *string { return &s }

func testProfile(userID, role string, skills, interests, lookingFor []string) *domain.Profile {
	p := &domain.Profile{
		UserID:             userID,
		EventID:            testEvent,
		Skills:             skills,
		Interests:          interests,
		LookingFor:         lookingFor,
		IsVisible:          true,
		OnboardingComplete: true,
	}
	if role != "" {
		p.CurrentRole = strPtr(role)
	}
	return p
}

func newTestUseCase(profiles []*domain.Profile, conns []*domain.Connection, users map[string]*domain.User) *DiscoverUseCase {
	if users == nil {
		users = map[string]*domain.User{}
		for _, p := range profiles {
			users[p.UserID] = &domain.User{ID: p.UserID, Name: "User " + p.UserID}
		}
	}
	return NewDiscoverUseCase(
		&fakeUserRepo{users: users},
		&fakeProfileRepo{profiles: profiles},
		&fakeConnectionRepo{conns: conns},
		nil,
	)
}

func TestDiscoverMissingViewerProfileYieldsEmptyList(t *testing.T) {
	uc := newTestUseCase([]*domain.Profile{
		testProfile("u2", "Engineer", []string{"Go"}, nil, nil),
	}, nil, nil)

	results, err := uc.Discover(context.Background(), "u1", testEvent, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestDiscoverExcludesSelfHiddenAndUnonboarded(t *testing.T) {
	hidden := testProfile("u3", "Engineer", []string{"Go"}, nil, nil)
	hidden.IsVisible = false
	incomplete := testProfile("u4", "Engineer", []string{"Go"}, nil, nil)
	incomplete.OnboardingComplete = false

	uc := newTestUseCase([]*domain.Profile{
		testProfile("u1", "Engineer", []string{"Go"}, nil, nil),
		testProfile("u2", "Engineer", []string{"Go"}, nil, nil),
		hidden,
		incomplete,
	}, nil, nil)

	results, err := uc.Discover(context.Background(), "u1", testEvent, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].UserID != "u2" {
		t.Errorf("results = %+v, want only u2", results)
	}
}

func TestDiscoverAnnotatesConnectionStatus(t *testing.T) {
	uc := newTestUseCase(
		[]*domain.Profile{
			testProfile("u1", "", []string{"Go"}, nil, nil),
			testProfile("u2", "", []string{"Go"}, nil, nil),
			testProfile("u3", "", []string{"Go"}, nil, nil),
			testProfile("u4", "", []string{"Go"}, nil, nil),
		},
		[]*domain.Connection{
			{EventID: testEvent, RequesterID: "u1", ReceiverID: "u2", Status: domain.ConnectionStatusPending},
			{EventID: testEvent, RequesterID: "u3", ReceiverID: "u1", Status: domain.ConnectionStatusAccepted},
		},
		nil,
	)

	results, err := uc.Discover(context.Background(), "u1", testEvent, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	statuses := map[string]string{}
	for _, r := range results {
		statuses[r.UserID] = r.ConnectionStatus
	}
	if statuses["u2"] != domain.ConnectionStatusPending {
		t.Errorf("u2 status = %q, want pending", statuses["u2"])
	}
	if statuses["u3"] != domain.ConnectionStatusAccepted {
		t.Errorf("u3 status = %q, want accepted", statuses["u3"])
	}
	if statuses["u4"] != domain.ConnectionStatusNone {
		t.Errorf("u4 status = %q, want none", statuses["u4"])
	}
}

func TestDiscoverSearchFiltersAllFields(t *testing.T) {
	profiles := []*domain.Profile{
		testProfile("u1", "", nil, nil, nil),
		testProfile("u2", "Product Designer", []string{"React"}, []string{"AI"}, nil),
		testProfile("u3", "Engineer", nil, nil, nil),
		testProfile("u4", "Founder", nil, nil, nil),
	}
	profiles[3].Company = strPtr("DesignWorks")
	users := map[string]*domain.User{
		"u2": {ID: "u2", Name: "Mia Zhang"},
		"u3": {ID: "u3", Name: "James Designer-Park"},
		"u4": {ID: "u4", Name: "Omar Hassan"},
	}

	uc := newTestUseCase(profiles, nil, users)

	results, err := uc.Discover(context.Background(), "u1", testEvent, "", "design")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]bool{}
	for _, r := range results {
		got[r.UserID] = true
	}
	// u2 by role, u3 by name, u4 by company.
	for _, id := range []string{"u2", "u3", "u4"} {
		if !got[id] {
			t.Errorf("expected %s in results, got %v", id, got)
		}
	}

	results, err = uc.Discover(context.Background(), "u1", testEvent, "", "zhang")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].UserID != "u2" {
		t.Errorf("search zhang = %+v, want only u2", results)
	}
}

func TestDiscoverCategoryFilters(t *testing.T) {
	profiles := []*domain.Profile{
		testProfile("u1", "", nil, nil, nil),
		testProfile("u2", "Backend Engineer", nil, nil, nil),
		testProfile("u3", "Painter", []string{"Figma"}, nil, nil),
		testProfile("u4", "VC Partner", nil, nil, nil),
		testProfile("u5", "Chef", []string{"Rust"}, nil, nil),
	}
	uc := newTestUseCase(profiles, nil, nil)

	cases := []struct {
		filter string
		want   []string
	}{
		{FilterDevelopers, []string{"u2", "u5"}}, // role fragment, skill token
		{FilterDesigners, []string{"u3"}},        // skill token only
		{FilterInvestors, []string{"u4"}},        // role fragments only
	}
	for _, tc := range cases {
		results, err := uc.Discover(context.Background(), "u1", testEvent, tc.filter, "")
		if err != nil {
			t.Fatalf("filter %s: unexpected error: %v", tc.filter, err)
		}
		got := map[string]bool{}
		for _, r := range results {
			got[r.UserID] = true
		}
		if len(results) != len(tc.want) {
			t.Errorf("filter %s: got %d results, want %d", tc.filter, len(results), len(tc.want))
		}
		for _, id := range tc.want {
			if !got[id] {
				t.Errorf("filter %s: expected %s in results", tc.filter, id)
			}
		}
	}
}

func TestDiscoverRankingIsStableDescending(t *testing.T) {
	uc := newTestUseCase([]*domain.Profile{
		testProfile("u1", "Founder", []string{"Go", "React"}, []string{"AI"}, []string{"Engineer"}),
		testProfile("low", "Chef", nil, nil, nil),                                           // fallback 40
		testProfile("tie1", "Writer", []string{"Go"}, nil, nil),                             // same score as tie2
		testProfile("tie2", "Poet", []string{"Go"}, nil, nil),                               // input order preserved
		testProfile("high", "Staff Engineer", []string{"Go", "React"}, []string{"AI"}, nil), // complementary
	}, nil, nil)

	results, err := uc.Discover(context.Background(), "u1", testEvent, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	if results[0].UserID != "high" {
		t.Errorf("top result = %s, want high", results[0].UserID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted descending at %d: %d > %d", i, results[i].Score, results[i-1].Score)
		}
	}
	// tie1 listed before tie2 in store order; stable sort keeps that.
	var tiePos []string
	for _, r := range results {
		if r.UserID == "tie1" || r.UserID == "tie2" {
			tiePos = append(tiePos, r.UserID)
		}
	}
	if len(tiePos) != 2 || tiePos[0] != "tie1" {
		t.Errorf("tie order = %v, want [tie1 tie2]", tiePos)
	}
}
