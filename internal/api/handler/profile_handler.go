package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auditsafe/audit-insights/internal/core/domain"
	"github.com/auditsafe/audit-insights/internal/core/ports"
)

// ProfileHandler serves the profile fetch/edit endpoints. The session token
// travels in the JSON body (SPA wire contract); the handler verifies it and
// derives the acting identity from the token alone.
type ProfileHandler struct {
	authService ports.AuthService
}

func NewProfileHandler(authService ports.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

// Get returns the profile of the token's owner.
//
// @Summary      Fetch the authenticated user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      getProfilesRequest  true  "Session token"
// @Success      200   {object}  profileResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/get-profiles [post]
func (h *ProfileHandler) Get(c echo.Context) error {
	var req getProfilesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.Token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no token provided"})
	}

	user, err := h.authService.GetProfile(c.Request().Context(), req.Token)
	if err != nil {
		return profileError(c, err)
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// Edit overwrites the profile fields of the token's owner. The record is
// updated in place, keyed by the token's email; nothing is ever inserted.
//
// @Summary      Edit the authenticated user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      editProfilesRequest  true  "Session token and profile fields"
// @Success      200   {object}  editProfilesResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/edit-profiles [post]
func (h *ProfileHandler) Edit(c echo.Context) error {
	var req editProfilesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.Token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no token provided"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), req.Token, req.profileFields.toDomain())
	if err != nil {
		return profileError(c, err)
	}

	return c.JSON(http.StatusOK, editProfilesResponse{
		Message: "profile updated successfully",
		Profile: toProfileResponse(user),
	})
}

func profileError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
