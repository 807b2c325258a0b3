package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cafehub/menu-api/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type createCategoryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=400"`
	URLName string `json:"url_name" validate:"required,min=2,max=400"`
	Info    string `json:"info" validate:"required,min=2,max=400"`
	ImgURL  string `json:"img_url,omitempty" validate:"omitempty,max=400"`
}

type updateCategoryRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=400"`
	URLName *string `json:"url_name,omitempty" validate:"omitempty,min=2,max=400"`
	Info    *string `json:"info,omitempty" validate:"omitempty,min=2,max=400"`
	ImgURL  *string `json:"img_url,omitempty" validate:"omitempty,max=400"`
}

// List returns all categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Failure      401  {object}  map[string]string
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Create adds a category.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.Name, req.URLName, req.Info, req.ImgURL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Update applies a partial update to a category.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Category id"
// @Param        body  body      updateCategoryRequest  true  "Fields to update"
// @Success      200   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Update(c.Request().Context(), c.Param("id"), ports.UpdateCategoryInput{
		Name:    req.Name,
		URLName: req.URLName,
		Info:    req.Info,
		ImgURL:  req.ImgURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Delete removes a category.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "Category id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categoryService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "category deleted successfully"})
}
