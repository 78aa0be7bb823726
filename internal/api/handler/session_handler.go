package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soyelectronico/storefront/internal/api/metrics"
	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// SessionHandler exposes the session lifecycle to the UI layer.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type sessionResponse struct {
	Identity string `json:"identity,omitempty"`
	Role     string `json:"role"`
}

// Login authenticates against the user service and establishes the session.
//
// @Summary      Log in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SessionEventsTotal.WithLabelValues("login_rejected").Inc()
		return err
	}

	metrics.SessionEventsTotal.WithLabelValues("login").Inc()

	return c.JSON(http.StatusOK, sessionResponse{Identity: session.Identity, Role: string(session.Role)})
}

// Register creates a customer account. It never establishes a session.
//
// @Summary      Register a new customer
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /session/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.sessions.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"status": "registered"})
}

// Logout destroys the session. Always succeeds.
//
// @Summary      Log out
// @Tags         session
// @Success      204
// @Router       /session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	metrics.SessionEventsTotal.WithLabelValues("logout").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Current reports the active session; role "anonymous" when none exists.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	session := h.sessions.Current()
	if session == nil {
		return c.JSON(http.StatusOK, sessionResponse{Role: string(domain.RoleAnonymous)})
	}
	return c.JSON(http.StatusOK, sessionResponse{Identity: session.Identity, Role: string(session.Role)})
}
