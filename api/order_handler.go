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

type orderHandler struct {
	responder   Responder
	logger      zerolog.Logger
	orderRepo   *database.OrderRepo
	productRepo *database.ProductRepo
}

func newOrderHandler(orderRepo *database.OrderRepo, productRepo *database.ProductRepo) orderHandler {
	logger := log.With().Str("handlerName", "orderHandler").Logger()

	return orderHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// getAllOrders returns all orders with their products
func (h orderHandler) getAllOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := h.orderRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find orders", "orders", err))
			return
		}

		h.responder.WriteJSON(w, orders)
	}
}

// getOrdersForProduct returns all orders referencing a product
func (h orderHandler) getOrdersForProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parseID(chi.URLParam(r, "productID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid productID"))
			return
		}

		orders, err := h.orderRepo.FindByProduct(productID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find orders", "orders", err))
			return
		}

		h.responder.WriteJSON(w, orders)
	}
}

// createOrder records a purchase of a product. The product must exist; an
// order never floats without its product reference. Total passes through
// as-is, the decimal(10,2) column being its only constraint.
func (h orderHandler) createOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var order models.Order
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode order request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if order.CustomerName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("customerName"))
			return
		}
		if order.ProductID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("productId"))
			return
		}

		if _, err := h.productRepo.FindByID(order.ProductID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find product", "product", err))
			return
		}

		order.ID = 0
		order.Product = nil

		if err := h.orderRepo.Add(&order); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create order", "order", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, order)
	}
}

// deleteOrder removes an order by id
func (h orderHandler) deleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseID(chi.URLParam(r, "orderID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid orderID"))
			return
		}

		if err := h.orderRepo.Delete(orderID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete order", "order", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
