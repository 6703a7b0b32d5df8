package users

import (
	"errors"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	eidLetters          = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	eidPrefix           = "E"
	maxGenerateAttempts = 10000
)

// employee ids are one letter followed by five alphanumerics, e.g. ENA487.
var eidPattern = regexp.MustCompile(`(?i)^E[A-Z0-9]{5}$`)

// ErrEIDSpaceExhausted indicates synthetic id generation gave up after the
// attempt cap. With 17,576,000 candidates this only happens when the store
// is pathologically full.
var ErrEIDSpaceExhausted = errors.New("users: employee id space exhausted")

// StoreConfig describes the dependencies of the identity store.
type StoreConfig struct {
	// RandInt returns a value in [0, n). Defaults to math/rand/v2.
	RandInt func(n int) int
	Logger  *zap.Logger
}

// Store maps arbitrary caller-supplied identifiers to canonical users and
// holds their profiles for the lifetime of the process. All lookups go
// through a secondary index of normalized identity strings so a user is
// reachable by employee id, username, or full name.
type Store struct {
	mu            sync.RWMutex
	usersByID     map[string]*StoredUser
	identityIndex map[string]string
	randInt       func(n int) int
	logger        *zap.Logger
}

// NewStore constructs an empty identity store.
func NewStore(cfg StoreConfig) *Store {
	randInt := cfg.RandInt
	if randInt == nil {
		randInt = rand.Intn
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		usersByID:     make(map[string]*StoredUser),
		identityIndex: make(map[string]string),
		randInt:       randInt,
		logger:        logger,
	}
}

// normalize produces the canonical index key for an identity string.
func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// FindUserByIdentifier resolves an employee id, username, or full name to
// its stored user. Lookup is trim- and case-insensitive and has no side
// effects.
func (s *Store) FindUserByIdentifier(identifier string) (StoredUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findLocked(identifier)
}

func (s *Store) findLocked(identifier string) (StoredUser, bool) {
	userID, ok := s.identityIndex[normalize(identifier)]
	if !ok {
		return StoredUser{}, false
	}
	stored, ok := s.usersByID[userID]
	if !ok {
		return StoredUser{}, false
	}
	return stored.clone(), true
}

// GetUserByID performs a direct primary-key lookup without normalization.
func (s *Store) GetUserByID(userID string) (StoredUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.usersByID[userID]
	if !ok {
		return StoredUser{}, false
	}
	return stored.clone(), true
}

// GetOrCreateUser resolves the identifier, creating a canonical record on
// first sight. Identifiers matching the employee-id pattern become the
// user id verbatim (upper-cased); anything else gets a synthetic id and a
// username derived from the identifier.
func (s *Store) GetOrCreateUser(identifier string) (StoredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.findLocked(identifier); ok {
		return existing, nil
	}

	trimmed := strings.TrimSpace(identifier)

	var userID, username string
	if eidPattern.MatchString(trimmed) {
		userID = strings.ToUpper(trimmed)
		username = strings.ToLower(trimmed)
	} else {
		generated, err := s.generateEIDLocked()
		if err != nil {
			return StoredUser{}, err
		}
		userID = generated
		username = strings.Join(strings.Fields(normalize(trimmed)), "")
		if username == "" {
			username = strings.ToLower(userID)
		}
	}

	stored := &StoredUser{
		UserID:   userID,
		Username: username,
	}
	s.usersByID[userID] = stored
	s.indexIdentityLocked(stored, username, userID, trimmed, strings.ToLower(userID))
	s.logger.Info("user created",
		zap.String("user_id", userID),
		zap.String("username", username))
	return stored.clone(), nil
}

// EnsureUser returns the record for userID, creating a minimal profile-less
// one if absent. An empty fallbackUsername defaults to the lower-cased id.
func (s *Store) EnsureUser(userID, fallbackUsername string) StoredUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensureLocked(userID, fallbackUsername).clone()
}

func (s *Store) ensureLocked(userID, fallbackUsername string) *StoredUser {
	if existing, ok := s.usersByID[userID]; ok {
		return existing
	}

	username := fallbackUsername
	if username == "" {
		username = strings.ToLower(userID)
	}
	stored := &StoredUser{
		UserID:   userID,
		Username: username,
	}
	s.usersByID[userID] = stored
	s.indexIdentityLocked(stored, username, userID, strings.ToLower(userID))
	return stored
}

// SaveUserProfile replaces the user's profile wholesale and refreshes the
// identity index so the (possibly changed) full name resolves again.
func (s *Store) SaveUserProfile(userID string, payload ProfilePayload) UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.ensureLocked(userID, "")

	profile := &UserProfile{
		UserID:          stored.UserID,
		Username:        stored.Username,
		FullName:        payload.FullName,
		ProfilePhotoURL: payload.ProfilePhotoURL,
		Location:        payload.Location,
		Org:             payload.Org,
		Workspace:       payload.Workspace,
		Interests:       payload.Interests,
		Bio:             payload.Bio,
		Goals:           payload.Goals,
	}
	stored.Profile = profile.Clone()
	s.indexIdentityLocked(stored, stored.Username, stored.UserID, profile.FullName)
	s.logger.Info("profile saved",
		zap.String("user_id", stored.UserID),
		zap.Int("interest_count", len(profile.Interests)))
	return *profile.Clone()
}

// GetUserProfile returns the current profile, or nil when the user does not
// exist or has not completed onboarding.
func (s *Store) GetUserProfile(userID string) *UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.usersByID[userID]
	if !ok {
		return nil
	}
	return stored.Profile.Clone()
}

// GenerateEID produces an unused synthetic employee id.
func (s *Store) GenerateEID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.generateEIDLocked()
}

func (s *Store) generateEIDLocked() (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		var letters [3]byte
		for i := range letters {
			letters[i] = eidLetters[s.randInt(len(eidLetters))]
		}
		digits := 100 + s.randInt(900)
		candidate := eidPrefix + string(letters[:]) + strconv.Itoa(digits)
		if _, exists := s.usersByID[candidate]; !exists {
			return candidate, nil
		}
	}
	return "", ErrEIDSpaceExhausted
}

// Seed loads pre-built profiles, indexing each under username, user id,
// and full name.
func (s *Store) Seed(profiles []UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range profiles {
		profile := profiles[i].Clone()
		stored := &StoredUser{
			UserID:   profile.UserID,
			Username: profile.Username,
			Profile:  profile,
		}
		s.usersByID[profile.UserID] = stored
		s.indexIdentityLocked(stored, profile.Username, profile.UserID, profile.FullName)
	}
}

// indexIdentityLocked registers each non-empty normalized identity for the
// user. Indexing is always performed in one step so the index cannot drift
// from the primary store.
func (s *Store) indexIdentityLocked(user *StoredUser, identities ...string) {
	for _, identity := range identities {
		key := normalize(identity)
		if key == "" {
			continue
		}
		s.identityIndex[key] = user.UserID
	}
}
