package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cafehub/menu-api/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type productRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=400"`
	Info        string  `json:"info" validate:"required,min=2,max=1000"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryURL string  `json:"category_url" validate:"required,min=2,max=400"`
	ImgURL      string  `json:"img_url" validate:"required,url"`
}

// List returns a page of products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page     query  int     false  "Page number (1-based)"
// @Param        perPage  query  int     false  "Items per page (default 10)"
// @Param        sort     query  string  false  "Sort field (default _id)"
// @Param        reverse  query  string  false  "Reverse sort order (yes/no)"
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("perPage"))

	products, err := h.productService.List(c.Request().Context(), ports.ProductListOptions{
		Page:    page,
		PerPage: perPage,
		Sort:    c.QueryParam("sort"),
		Reverse: c.QueryParam("reverse") == "yes",
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns a single product by id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// ListByUser returns the products created by a given user.
//
// @Summary      List a user's products
// @Tags         products
// @Produce      json
// @Param        user_id  path  string  true  "Owner user id"
// @Success      200  {array}  domain.Product
// @Failure      401  {object}  map[string]string
// @Router       /products/user/{user_id} [get]
func (h *ProductHandler) ListByUser(c echo.Context) error {
	products, err := h.productService.ListByUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a product owned by the caller.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Info:        req.Info,
		Price:       req.Price,
		CategoryURL: req.CategoryURL,
		ImgURL:      req.ImgURL,
		UserID:      identity.UserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update replaces a product's fields.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Update(c.Request().Context(), c.Param("id"), ports.CreateProductInput{
		Name:        req.Name,
		Info:        req.Info,
		Price:       req.Price,
		CategoryURL: req.CategoryURL,
		ImgURL:      req.ImgURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "product deleted successfully"})
}
