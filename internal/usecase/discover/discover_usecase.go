package discover

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
	"github.com/techconnect/backend/internal/usecase/match"
)

// ResultCache holds computed recommendation lists for a short while so
// repeated filter and search requests do not rescore the whole event.
// A cache miss is reported as an error; implementations decide which.
type ResultCache interface {
	Get(ctx context.Context, eventID, viewerID string) ([]MatchResult, error)
	Set(ctx context.Context, eventID, viewerID string, results []MatchResult) error
	Invalidate(ctx context.Context, eventID, viewerID string) error
}

type DiscoverUseCase struct {
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	connectionRepo repository.ConnectionRepository
	cache          ResultCache
}

// NewDiscoverUseCase wires the recommendation pipeline. cache may be nil,
// in which case every request rescores from scratch.
func NewDiscoverUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	connectionRepo repository.ConnectionRepository,
	cache ResultCache,
) *DiscoverUseCase {
	return &DiscoverUseCase{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		connectionRepo: connectionRepo,
		cache:          cache,
	}
}

// MatchResult is one ranked candidate in the discover list. It is never
// persisted; at most it lives in the cache for a TTL.
type MatchResult struct {
	UserID           string   `json:"user_id"`
	Name             string   `json:"name"`
	Image            *string  `json:"image"`
	CurrentRole      string   `json:"current_role"`
	Company          string   `json:"company"`
	Score            int      `json:"score"`
	MatchType        string   `json:"match_type"`
	Explanation      string   `json:"explanation"`
	Icon             string   `json:"icon"`
	SharedTags       []string `json:"shared_tags"`
	ConnectionStatus string   `json:"connection_status"`
	Skills           []string `json:"skills"`
	Interests        []string `json:"interests"`
}

// Discover returns the ranked recommendation list for the viewer in the
// event. A missing viewer profile is not an error: onboarding has not
// happened yet, so the list is simply empty. Search and category filters
// are applied after the base list is scored, so a cached base list serves
// every filter combination.
func (uc *DiscoverUseCase) Discover(ctx context.Context, viewerID, eventID, filter, query string) ([]MatchResult, error) {
	results, err := uc.baseResults(ctx, viewerID, eventID)
	if err != nil {
		return nil, err
	}

	results = applySearch(results, query)
	results = applyCategory(results, filter)

	// Stable: ties keep store order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

func (uc *DiscoverUseCase) baseResults(ctx context.Context, viewerID, eventID string) ([]MatchResult, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, eventID, viewerID); err == nil {
			return cached, nil
		}
	}

	viewer, err := uc.profileRepo.GetByUserAndEvent(ctx, viewerID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return []MatchResult{}, nil
		}
		return nil, fmt.Errorf("failed to get viewer profile: %w", err)
	}

	candidates, err := uc.profileRepo.ListVisibleByEvent(ctx, eventID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	statuses, err := uc.connectionStatuses(ctx, eventID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	results := make([]MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		user, err := uc.userRepo.GetByID(ctx, candidate.UserID)
		if err != nil {
			continue
		}

		scored := match.Score(viewer, candidate)

		status, ok := statuses[candidate.UserID]
		if !ok {
			status = domain.ConnectionStatusNone
		}

		results = append(results, MatchResult{
			UserID:           candidate.UserID,
			Name:             user.Name,
			Image:            user.Image,
			CurrentRole:      candidate.Role(),
			Company:          candidate.CompanyName(),
			Score:            scored.Score,
			MatchType:        scored.MatchType,
			Explanation:      scored.Explanation,
			Icon:             scored.Icon,
			SharedTags:       scored.SharedTags,
			ConnectionStatus: status,
			Skills:           candidate.Skills,
			Interests:        candidate.Interests,
		})
	}

	if uc.cache != nil {
		// A write failure only costs a recompute on the next request.
		_ = uc.cache.Set(ctx, eventID, viewerID, results)
	}

	return results, nil
}

// InvalidateFor drops the cached list for one viewer, typically after a
// connection request changed a status shown in the results.
func (uc *DiscoverUseCase) InvalidateFor(ctx context.Context, viewerID, eventID string) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Invalidate(ctx, eventID, viewerID)
}

func (uc *DiscoverUseCase) connectionStatuses(ctx context.Context, eventID, viewerID string) (map[string]string, error) {
	conns, err := uc.connectionRepo.ListForUser(ctx, eventID, viewerID)
	if err != nil {
		return nil, err
	}
	statuses := make(map[string]string, len(conns))
	for _, conn := range conns {
		if otherID, ok := conn.OtherUserID(viewerID); ok {
			statuses[otherID] = conn.Status
		}
	}
	return statuses, nil
}

// applySearch keeps candidates whose name, role or company contains the
// query, case-insensitively. Any field matching keeps the candidate.
func applySearch(results []MatchResult, query string) []MatchResult {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return results
	}
	filtered := results[:0]
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Name), query) ||
			strings.Contains(strings.ToLower(r.CurrentRole), query) ||
			strings.Contains(strings.ToLower(r.Company), query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func applyCategory(results []MatchResult, filter string) []MatchResult {
	if filter == "" || filter == FilterAll {
		return results
	}
	filtered := results[:0]
	for _, r := range results {
		if matchesCategory(filter, r.CurrentRole, r.Skills) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
