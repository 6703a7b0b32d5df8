package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MarcoPoloResearchLab/onematch/backend/internal/interests"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/matches"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/metrics"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/profiles"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/users"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	userIDContextKey = "onematch_user_id"
	userIDHeader     = "X-User-Id"
)

var (
	errMissingStore          = errors.New("identity store dependency required")
	errMissingCatalog        = errors.New("interest catalog dependency required")
	errMissingProfileService = errors.New("profile service dependency required")
	errMissingMatchProvider  = errors.New("match provider dependency required")
	errMissingSessionManager = errors.New("session manager dependency required")
)

// SessionManager issues and validates session tokens for canonical user ids.
type SessionManager interface {
	IssueSessionToken(userID string) (string, int64, error)
	ValidateToken(token string) (string, error)
}

type Dependencies struct {
	Store          *users.Store
	Catalog        *interests.Catalog
	ProfileService *profiles.Service
	MatchProvider  *matches.Provider
	SessionManager SessionManager
	Events         *ProfileEventDispatcher
	Logger         *zap.Logger
}

func NewHTTPHandler(deps Dependencies) (http.Handler, error) {
	if deps.Store == nil {
		return nil, errMissingStore
	}
	if deps.Catalog == nil {
		return nil, errMissingCatalog
	}
	if deps.ProfileService == nil {
		return nil, errMissingProfileService
	}
	if deps.MatchProvider == nil {
		return nil, errMissingMatchProvider
	}
	if deps.SessionManager == nil {
		return nil, errMissingSessionManager
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	events := deps.Events
	if events == nil {
		events = NewProfileEventDispatcher()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observeRequests())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders: []string{"Authorization", "Content-Type", userIDHeader},
		MaxAge:       12 * time.Hour,
	}))

	handler := &httpHandler{
		store:    deps.Store,
		catalog:  deps.Catalog,
		profiles: deps.ProfileService,
		matches:  deps.MatchProvider,
		sessions: deps.SessionManager,
		events:   events,
		logger:   logger,
	}

	router.GET("/healthz", handler.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.POST("/auth/login", handler.handleLogin)
	api.POST("/auth/logout", handler.handleLogout)
	api.GET("/interests", handler.handleListInterests)

	protected := api.Group("/")
	protected.Use(handler.identifyRequest)
	protected.GET("/users/me/profile", handler.handleGetMyProfile)
	protected.PUT("/users/me/profile", handler.handleSaveMyProfile)
	protected.GET("/matches/users", handler.handleUserMatches)
	protected.GET("/matches/communities", handler.handleCommunityMatches)
	protected.GET("/network/:userId", handler.handleNetwork)
	protected.POST("/actions/schedule-chat", handler.handleScheduleChat)
	protected.POST("/actions/join-community", handler.handleJoinCommunity)
	protected.GET("/events", handler.handleEvents)

	return router, nil
}

type httpHandler struct {
	store    *users.Store
	catalog  *interests.Catalog
	profiles *profiles.Service
	matches  *matches.Provider
	sessions SessionManager
	events   *ProfileEventDispatcher
	logger   *zap.Logger
}

func respondSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"status": "error", "message": message})
}

func observeRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}

func (h *httpHandler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type loginRequestPayload struct {
	Username string `json:"username"`
}

type loginResponsePayload struct {
	UserID    string             `json:"userId"`
	Username  string             `json:"username"`
	Profile   *users.UserProfile `json:"profile"`
	Token     string             `json:"token"`
	ExpiresIn int64              `json:"expiresIn"`
}

func (h *httpHandler) handleLogin(c *gin.Context) {
	var request loginRequestPayload
	if err := c.ShouldBindJSON(&request); err != nil || strings.TrimSpace(request.Username) == "" {
		metrics.ObserveLogin("invalid")
		respondError(c, http.StatusBadRequest, "username is required")
		return
	}

	identifier := strings.TrimSpace(request.Username)
	user, err := h.store.GetOrCreateUser(identifier)
	if err != nil {
		metrics.ObserveLogin("error")
		h.logger.Error("user resolution failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	token, expiresIn, err := h.sessions.IssueSessionToken(user.UserID)
	if err != nil {
		metrics.ObserveLogin("error")
		h.logger.Error("failed to issue session token",
			zap.String("user_id", user.UserID),
			zap.Error(err))
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	metrics.ObserveLogin("success")
	h.logger.Info("user logged in",
		zap.String("user_id", user.UserID),
		zap.String("username", user.Username))
	respondSuccess(c, loginResponsePayload{
		UserID:    user.UserID,
		Username:  user.Username,
		Profile:   h.store.GetUserProfile(user.UserID),
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

func (h *httpHandler) handleLogout(c *gin.Context) {
	// sessions are bearer tokens and the store keeps no session state, so
	// logout is a client concern; the endpoint exists for route symmetry.
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *httpHandler) handleListInterests(c *gin.Context) {
	catalog := h.catalog.List()
	metrics.SetInterestCatalogSize(len(catalog))
	respondSuccess(c, catalog)
}

type profileResponsePayload struct {
	Profile   *users.UserProfile `json:"profile"`
	Onboarded bool               `json:"onboarded"`
}

func (h *httpHandler) handleGetMyProfile(c *gin.Context) {
	userID := c.GetString(userIDContextKey)

	profile, err := h.profiles.GetProfile(userID)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}
	respondSuccess(c, profileResponsePayload{
		Profile:   profile,
		Onboarded: users.IsProfileComplete(profile),
	})
}

func (h *httpHandler) handleSaveMyProfile(c *gin.Context) {
	userID := c.GetString(userIDContextKey)

	var request profiles.UpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profiles.UpdateProfile(userID, request)
	if err != nil {
		if errors.Is(err, profiles.ErrMissingUserID) {
			respondError(c, http.StatusUnauthorized, "unauthenticated")
			return
		}
		metrics.ObserveProfileSave("error")
		h.logger.Error("profile save failed",
			zap.String("user_id", userID),
			zap.Error(err))
		respondError(c, http.StatusInternalServerError, "profile save failed")
		return
	}

	metrics.ObserveProfileSave("success")
	h.events.Publish(ProfileEvent{
		UserID:    profile.UserID,
		EventType: ProfileEventSaved,
		Onboarded: users.IsProfileComplete(&profile),
		Timestamp: time.Now().UTC(),
	})
	respondSuccess(c, profile)
}

func (h *httpHandler) handleUserMatches(c *gin.Context) {
	userID := c.GetString(userIDContextKey)
	respondSuccess(c, h.matches.UserMatches(userID))
}

func (h *httpHandler) handleCommunityMatches(c *gin.Context) {
	userID := c.GetString(userIDContextKey)
	respondSuccess(c, h.matches.CommunityMatches(userID))
}

func (h *httpHandler) handleNetwork(c *gin.Context) {
	respondSuccess(c, h.matches.Network(c.Param("userId")))
}

type scheduleChatPayload struct {
	InviteeUserID string `json:"inviteeUserId"`
}

func (h *httpHandler) handleScheduleChat(c *gin.Context) {
	var request scheduleChatPayload
	if err := c.ShouldBindJSON(&request); err != nil || strings.TrimSpace(request.InviteeUserID) == "" {
		respondError(c, http.StatusBadRequest, "inviteeUserId is required")
		return
	}
	respondSuccess(c, gin.H{
		"message":       "Coffee chat suggested!",
		"inviteeUserId": request.InviteeUserID,
	})
}

type joinCommunityPayload struct {
	CommunityID string `json:"communityId"`
}

func (h *httpHandler) handleJoinCommunity(c *gin.Context) {
	var request joinCommunityPayload
	if err := c.ShouldBindJSON(&request); err != nil || strings.TrimSpace(request.CommunityID) == "" {
		respondError(c, http.StatusBadRequest, "communityId is required")
		return
	}
	respondSuccess(c, gin.H{
		"message":     "Successfully joined community!",
		"communityId": request.CommunityID,
		"slackUrl":    "slack://channel?team=T12345&id=C67890",
	})
}

func (h *httpHandler) handleEvents(c *gin.Context) {
	userID := c.GetString(userIDContextKey)

	stream, cancel := h.events.Subscribe(c.Request.Context(), userID)
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-stream:
			if !ok {
				return false
			}
			c.SSEvent(event.EventType, event)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", gin.H{"source": profileEventSource})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// identifyRequest resolves the caller's identity from a Bearer session
// token or, failing that, the X-User-Id header the web client sends.
func (h *httpHandler) identifyRequest(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token != "" {
			userID, err := h.sessions.ValidateToken(token)
			if err != nil {
				h.logger.Warn("session token validation failed", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "unauthenticated"})
				return
			}
			c.Set(userIDContextKey, userID)
			c.Next()
			return
		}
	}

	if userID := strings.TrimSpace(c.GetHeader(userIDHeader)); userID != "" {
		c.Set(userIDContextKey, userID)
		c.Next()
		return
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "unauthenticated"})
}
