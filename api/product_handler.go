package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/demosite/blogshop-backend/database"
	"github.com/demosite/blogshop-backend/errs"
	"github.com/demosite/blogshop-backend/models"
)

type productHandler struct {
	responder   Responder
	logger      zerolog.Logger
	productRepo *database.ProductRepo
}

func newProductHandler(productRepo *database.ProductRepo) productHandler {
	logger := log.With().Str("handlerName", "productHandler").Logger()

	return productHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		productRepo: productRepo,
	}
}

// ProductCollection represents multiple products with a total count
type ProductCollection struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total,omitempty"`
}

// getAllProducts retrieves all products
// @Summary Get all products
// @Tags Products
// @Produce json
// @Success 200 {object} ProductCollection "List of products"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /products [get]
func (h productHandler) getAllProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := h.productRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find products", "products", err))
			return
		}

		collection := ProductCollection{Total: len(products)}
		for _, product := range products {
			collection.Products = append(collection.Products, *product)
		}

		h.responder.WriteJSON(w, collection)
	}
}

// getProduct retrieves a specific product by ID
// @Summary Get product
// @Tags Products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} models.Product "Product details"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /product/{productID} [get]
func (h productHandler) getProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parseID(chi.URLParam(r, "productID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid productID"))
			return
		}

		product, err := h.productRepo.FindByID(productID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find product", "product", err))
			return
		}

		h.responder.WriteJSON(w, product)
	}
}

// createProduct creates a new product. Price passes through as-is; the
// decimal(10,2) column is the only constraint on it.
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.Product true "Product data"
// @Success 201 {object} models.Product "Created product"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /product [post]
func (h productHandler) createProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product models.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode product request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if product.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		product.ID = 0
		product.Orders = nil

		if err := h.productRepo.Add(&product); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create product", "product", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, product)
	}
}

// updateProduct updates an existing product
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param product body models.Product true "Product data"
// @Success 200 {object} models.Product "Updated product"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /product/{productID} [put]
func (h productHandler) updateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parseID(chi.URLParam(r, "productID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid productID"))
			return
		}

		existing, err := h.productRepo.FindByID(productID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find product", "product", err))
			return
		}

		var payload models.Product
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Name != "" {
			existing.Name = payload.Name
		}
		if payload.Description != "" {
			existing.Description = payload.Description
		}
		existing.Price = payload.Price
		existing.Stock = payload.Stock

		if err := h.productRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update product", "product", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteProduct removes a product; its orders cascade
// @Summary Delete product
// @Tags Products
// @Param productID path int true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /product/{productID} [delete]
func (h productHandler) deleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parseID(chi.URLParam(r, "productID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid productID"))
			return
		}

		if err := h.productRepo.Delete(productID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete product", "product", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
