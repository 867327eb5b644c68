package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/insight-ec/opportunity-board/internal/auth"
	"github.com/insight-ec/opportunity-board/internal/models"
	"github.com/insight-ec/opportunity-board/internal/storage"
)

// Server is the request layer over the storage facade. It holds no state of
// its own; everything mutable lives behind Storage.
type Server struct {
	Storage     storage.Storage
	AuthService *auth.Service
	Echo        *echo.Echo
}

// NewServer wires routes and middleware. authService may be nil (in-memory
// mode without a users table); auth routes then answer 503.
func NewServer(store storage.Storage, authService *auth.Service, corsOrigins []string) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	if len(corsOrigins) == 0 {
		corsOrigins = []string{"http://localhost:5173"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	s := &Server{
		Storage:     store,
		AuthService: authService,
		Echo:        e,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")

	// Public
	api.GET("/opportunities", s.handleListOpportunities)
	api.GET("/opportunities/:id", s.handleGetOpportunity)
	api.GET("/site-content", s.handleGetSiteContent)
	api.GET("/visitors", s.handleGetVisitorCount)
	api.POST("/visitors", s.handleIncrementVisitorCount)

	// Auth
	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/login", s.handleLogin)

	// Admin (opportunity CRUD + content edits)
	admin := api.Group("")
	admin.Use(auth.AdminMiddleware)
	admin.POST("/opportunities", s.handleCreateOpportunity)
	admin.PATCH("/opportunities/:id", s.handleUpdateOpportunity)
	admin.DELETE("/opportunities/:id", s.handleDeleteOpportunity)
	admin.PATCH("/site-content", s.handleUpdateSiteContent)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// storageError maps typed storage failures onto HTTP statuses. Nothing is
// swallowed: unknown errors are logged and become a 500.
func storageError(c echo.Context, err error) error {
	var ve *storage.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "Validation failed",
			"fields": ve.Fields,
		})
	}

	var nfe *storage.NotFoundError
	if errors.As(err, &nfe) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": nfe.Error()})
	}

	c.Logger().Errorf("storage error: %v", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
}

// splitCSV splits a comma-separated query parameter into trimmed non-empty strings.
func splitCSV(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// listFilters are the optional query-string filters on the public listing.
// The client filters arrays on its side too; these just let it narrow the
// payload (notably ecuador=true for the promo section).
type listFilters struct {
	Country         string
	Funding         string
	Competitiveness string
	CareerAreas     []string
	Ecuador         *bool
}

func (f listFilters) match(o models.Opportunity) bool {
	if f.Country != "" && !strings.EqualFold(o.Country, f.Country) {
		return false
	}
	if f.Funding != "" && string(o.Funding) != f.Funding {
		return false
	}
	if f.Competitiveness != "" && string(o.Competitiveness) != f.Competitiveness {
		return false
	}
	if f.Ecuador != nil && o.IsEcuador != *f.Ecuador {
		return false
	}
	if len(f.CareerAreas) > 0 {
		found := false
		for _, want := range f.CareerAreas {
			for _, have := range o.CareerArea {
				if string(have) == want {
					found = true
					break
				}
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *Server) handleListOpportunities(c echo.Context) error {
	careerAreas := c.QueryParam("careerArea")
	if careerAreas == "" {
		// legacy snake_case spelling
		careerAreas = c.QueryParam("career_area")
	}

	filters := listFilters{
		Country:         c.QueryParam("country"),
		Funding:         c.QueryParam("funding"),
		Competitiveness: c.QueryParam("competitiveness"),
		CareerAreas:     splitCSV(careerAreas),
	}
	if v := c.QueryParam("ecuador"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			filters.Ecuador = &val
		}
	}

	opps, err := s.Storage.ListOpportunities(c.Request().Context())
	if err != nil {
		return storageError(c, err)
	}

	filtered := make([]models.Opportunity, 0, len(opps))
	for _, o := range opps {
		if filters.match(o) {
			filtered = append(filtered, o)
		}
	}

	return c.JSON(http.StatusOK, filtered)
}

func (s *Server) handleGetOpportunity(c echo.Context) error {
	opp, err := s.Storage.GetOpportunity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storageError(c, err)
	}
	if opp == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	return c.JSON(http.StatusOK, opp)
}

func (s *Server) handleCreateOpportunity(c echo.Context) error {
	var in models.InsertOpportunity
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	opp, err := s.Storage.CreateOpportunity(c.Request().Context(), in)
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, opp)
}

func (s *Server) handleUpdateOpportunity(c echo.Context) error {
	var patch models.UpdateOpportunity
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	opp, err := s.Storage.UpdateOpportunity(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, opp)
}

func (s *Server) handleDeleteOpportunity(c echo.Context) error {
	deleted, err := s.Storage.DeleteOpportunity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": deleted})
}

func (s *Server) handleGetSiteContent(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Storage.GetSiteContent())
}

func (s *Server) handleUpdateSiteContent(c echo.Context) error {
	var patch models.SiteContentPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	return c.JSON(http.StatusOK, s.Storage.UpdateSiteContent(patch))
}

func (s *Server) handleGetVisitorCount(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int64{"count": s.Storage.GetVisitorCount()})
}

func (s *Server) handleIncrementVisitorCount(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int64{"count": s.Storage.IncrementVisitorCount()})
}

func (s *Server) handleSignup(c echo.Context) error {
	if s.AuthService == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Auth unavailable in in-memory mode"})
	}

	var req auth.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.AuthService.Signup(c.Request().Context(), req)
	if err != nil {
		if err == auth.ErrUserExists {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleLogin(c echo.Context) error {
	if s.AuthService == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Auth unavailable in in-memory mode"})
	}

	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.AuthService.Login(c.Request().Context(), req)
	if err != nil {
		if err == auth.ErrInvalidCreds {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
