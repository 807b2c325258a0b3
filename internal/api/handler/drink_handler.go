package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cafehub/menu-api/internal/core/ports"
)

type DrinkHandler struct {
	drinkService ports.DrinkService
}

func NewDrinkHandler(drinkService ports.DrinkService) *DrinkHandler {
	return &DrinkHandler{drinkService: drinkService}
}

type createDrinkRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	ML    string  `json:"ml" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type updateDrinkRequest struct {
	Name  *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ML    *string  `json:"ml,omitempty"`
	Price *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// List returns all drinks.
//
// @Summary      List drinks
// @Tags         drinks
// @Produce      json
// @Success      200  {array}  domain.Drink
// @Failure      401  {object}  map[string]string
// @Router       /drinks [get]
func (h *DrinkHandler) List(c echo.Context) error {
	drinks, err := h.drinkService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, drinks)
}

// Get returns a drink by id.
//
// @Summary      Get a drink
// @Tags         drinks
// @Produce      json
// @Param        id  path  string  true  "Drink id"
// @Success      200  {object}  domain.Drink
// @Failure      404  {object}  map[string]string
// @Router       /drinks/{id} [get]
func (h *DrinkHandler) Get(c echo.Context) error {
	drink, err := h.drinkService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, drink)
}

// Create adds a drink.
//
// @Summary      Create a drink
// @Tags         drinks
// @Accept       json
// @Produce      json
// @Param        body  body      createDrinkRequest  true  "Drink details"
// @Success      201   {object}  domain.Drink
// @Failure      400   {object}  map[string]string
// @Router       /drinks [post]
func (h *DrinkHandler) Create(c echo.Context) error {
	var req createDrinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	drink, err := h.drinkService.Create(c.Request().Context(), req.Name, req.ML, req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, drink)
}

// Update applies a partial update to a drink.
//
// @Summary      Update a drink
// @Tags         drinks
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Drink id"
// @Param        body  body      updateDrinkRequest  true  "Fields to update"
// @Success      200   {object}  domain.Drink
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /drinks/{id} [put]
func (h *DrinkHandler) Update(c echo.Context) error {
	var req updateDrinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	drink, err := h.drinkService.Update(c.Request().Context(), c.Param("id"), ports.UpdateDrinkInput{
		Name:  req.Name,
		ML:    req.ML,
		Price: req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, drink)
}

// Delete removes a drink.
//
// @Summary      Delete a drink
// @Tags         drinks
// @Produce      json
// @Param        id  path  string  true  "Drink id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /drinks/{id} [delete]
func (h *DrinkHandler) Delete(c echo.Context) error {
	if err := h.drinkService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "drink deleted successfully"})
}
