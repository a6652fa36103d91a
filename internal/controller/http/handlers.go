package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvillar/fastfeet-front/internal/model"
)

const (
	defaultPageIndex = 1
	defaultPageLimit = 8
)

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, c.lg, &model.APIError{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}

	if apiErr := c.service.Login(r.Context(), body); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	c.service.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) Me(w http.ResponseWriter, r *http.Request) {
	user, apiErr := c.service.CurrentUser(r.Context())
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, user, http.StatusOK)
}

func (c *Controller) Orders(w http.ResponseWriter, r *http.Request) {
	pageIndex := queryInt(r, "pageIndex", defaultPageIndex)
	limit := queryInt(r, "limit", defaultPageLimit)

	page, apiErr := c.service.Orders(r.Context(), pageIndex, limit)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, page, http.StatusOK)
}

// OrderDetails serves the detail screen's view-model: the order snapshot
// plus progress, checkpoints and the role-gated next action.
func (c *Controller) OrderDetails(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	situation, apiErr := c.service.OrderSituation(r.Context(), orderID)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, situation, http.StatusOK)
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, c.lg, &model.APIError{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}

	if apiErr := c.service.CreateOrder(r.Context(), body); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (c *Controller) PickUpOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	if apiErr := c.service.PickUpOrder(r.Context(), orderID); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) CreateRecipient(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateRecipientDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, c.lg, &model.APIError{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}

	if apiErr := c.service.CreateRecipient(r.Context(), body); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (c *Controller) RecipientsLite(w http.ResponseWriter, r *http.Request) {
	pageIndex := queryInt(r, "pageIndex", defaultPageIndex)
	q := r.URL.Query().Get("q")

	page, apiErr := c.service.RecipientsLite(r.Context(), pageIndex, q)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, page, http.StatusOK)
}

func (c *Controller) Notifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.lg, c.service.Notifications(), http.StatusOK)
}
