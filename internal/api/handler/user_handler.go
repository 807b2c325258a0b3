package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cafehub/menu-api/internal/api/metrics"
	"github.com/cafehub/menu-api/internal/api/middleware"
	"github.com/cafehub/menu-api/internal/core/domain"
	"github.com/cafehub/menu-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"required,email,max=200"`
	Password string `json:"password" validate:"required,min=3,max=150"`
	Role     string `json:"role,omitempty"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type favoritesRequest struct {
	Favorites []string `json:"favs_ar"`
}

// Register creates a new account. The role field is only honored when the
// request carries a valid admin session; anonymous callers always get a
// regular user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Registration is open; an admin identity is picked up when present so
	// the role field can be honored, but absence is not an error.
	var caller *domain.Identity
	if identity, ok := middleware.IdentityFromContext(c); ok {
		caller = &identity
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, caller)
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, user)
}

// Me returns the caller's own profile, password excluded.
//
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List returns all accounts, passwords excluded.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ChangeRole updates another user's role. Changing one's own role is
// forbidden regardless of the requested value.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Target user id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id}/role [put]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.ChangeRole(c.Request().Context(), c.Param("id"), req.Role, identity)
	if err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete removes another user's account. Deleting one's own account through
// this administrative path is forbidden.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "Target user id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), c.Param("id"), identity); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "user deleted successfully"})
}

// UpdateFavorites replaces the caller's favorites list.
//
// @Summary      Update the authenticated user's favorites
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      favoritesRequest  true  "Favorites"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/favorites [patch]
func (h *UserHandler) UpdateFavorites(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req favoritesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Favorites == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "favs_ar must be an array")
	}

	if err := h.userService.UpdateFavorites(c.Request().Context(), identity.UserID, req.Favorites); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "favorites updated"})
}
