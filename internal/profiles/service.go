package profiles

import (
	"errors"
	"fmt"

	"github.com/MarcoPoloResearchLab/onematch/backend/internal/interests"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/users"
	"go.uber.org/zap"
)

var (
	errMissingStore   = errors.New("identity store is required")
	errMissingCatalog = errors.New("interest catalog is required")
	// ErrMissingUserID indicates the caller supplied no resolvable identity.
	ErrMissingUserID = errors.New("profiles: user id is required")

	noOpLogger = zap.NewNop()
)

const (
	opServiceNew    = "profiles.service.new"
	opUpdateProfile = "profiles.update_profile"
)

// ServiceError carries a stable machine-readable code alongside the cause.
type ServiceError struct {
	code string
	err  error
}

func (e *ServiceError) Error() string {
	if e.err == nil {
		return e.code
	}
	return fmt.Sprintf("%s: %v", e.code, e.err)
}

func (e *ServiceError) Unwrap() error {
	return e.err
}

func (e *ServiceError) Code() string {
	return e.code
}

func newServiceError(operation, reason string, cause error) error {
	return &ServiceError{code: fmt.Sprintf("%s.%s", operation, reason), err: cause}
}

// UpdateRequest is a partial profile edit. Nil scalar fields fall back to
// the previously stored value (or the zero default when none exists).
// InterestIDs selects catalog entries; NewInterests are free-form names
// resolved against (or appended to) the catalog.
type UpdateRequest struct {
	FullName        *string  `json:"fullName"`
	ProfilePhotoURL *string  `json:"profilePhotoUrl"`
	Location        *string  `json:"location"`
	Org             *string  `json:"org"`
	Workspace       *string  `json:"workspace"`
	Bio             *string  `json:"bio"`
	Goals           *string  `json:"goals"`
	InterestIDs     []string `json:"interestIds"`
	NewInterests    []string `json:"newInterests"`
}

// ServiceConfig describes the dependencies of the profile service.
type ServiceConfig struct {
	Store   *users.Store
	Catalog *interests.Catalog
	Logger  *zap.Logger
}

// Service merges partial profile edits into canonical whole-record
// profiles, resolving interest selections through the global catalog.
type Service struct {
	store   *users.Store
	catalog *interests.Catalog
	logger  *zap.Logger
}

// NewService constructs the profile service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, newServiceError(opServiceNew, "missing_store", errMissingStore)
	}
	if cfg.Catalog == nil {
		return nil, newServiceError(opServiceNew, "missing_catalog", errMissingCatalog)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}
	return &Service{
		store:   cfg.Store,
		catalog: cfg.Catalog,
		logger:  logger,
	}, nil
}

// GetProfile returns the stored profile, or nil pre-onboarding.
func (s *Service) GetProfile(userID string) (*users.UserProfile, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	return s.store.GetUserProfile(userID), nil
}

// UpdateProfile applies the edit on top of the stored profile and persists
// the result wholesale. Precedence per field is new value, then previous
// stored value, then zero default.
func (s *Service) UpdateProfile(userID string, request UpdateRequest) (users.UserProfile, error) {
	if userID == "" {
		return users.UserProfile{}, ErrMissingUserID
	}

	previous := s.store.GetUserProfile(userID)
	if previous == nil {
		previous = &users.UserProfile{}
	}

	selected := s.catalog.SelectByIDs(request.InterestIDs)
	created, err := s.catalog.Resolve(request.NewInterests)
	if err != nil {
		s.logger.Error("interest resolution failed",
			zap.String("user_id", userID),
			zap.Error(err))
		return users.UserProfile{}, newServiceError(opUpdateProfile, "interest_resolution", err)
	}

	payload := users.ProfilePayload{
		FullName:        resolveField(request.FullName, previous.FullName),
		ProfilePhotoURL: resolvePhotoURL(request.ProfilePhotoURL, previous.ProfilePhotoURL),
		Location:        resolveField(request.Location, previous.Location),
		Org:             resolveField(request.Org, previous.Org),
		Workspace:       resolveField(request.Workspace, previous.Workspace),
		Bio:             resolveField(request.Bio, previous.Bio),
		Goals:           resolveField(request.Goals, previous.Goals),
		Interests:       dedupeByID(append(selected, created...)),
	}

	return s.store.SaveUserProfile(userID, payload), nil
}

func resolveField(incoming *string, previous string) string {
	if incoming != nil {
		return *incoming
	}
	return previous
}

func resolvePhotoURL(incoming, previous *string) *string {
	if incoming != nil {
		url := *incoming
		return &url
	}
	if previous == nil {
		return nil
	}
	url := *previous
	return &url
}

// dedupeByID collapses duplicate interest ids, keeping first appearance.
func dedupeByID(entries []interests.Interest) []interests.Interest {
	seen := make(map[string]struct{}, len(entries))
	deduped := make([]interests.Interest, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		seen[entry.ID] = struct{}{}
		deduped = append(deduped, entry)
	}
	return deduped
}
