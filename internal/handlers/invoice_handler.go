package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-service-backend/internal/models"
	"invoice-service-backend/internal/services/invoices"
	"invoice-service-backend/internal/validation"
	"invoice-service-backend/internal/views"
)

// CustomerLister feeds the customer dropdown on the invoice form.
type CustomerLister interface {
	List() ([]models.Customer, error)
}

type InvoiceHandler struct {
	service   *invoices.Service
	customers CustomerLister
	cache     *views.Cache
}

func NewInvoiceHandler(service *invoices.Service, customers CustomerLister, cache *views.Cache) *InvoiceHandler {
	return &InvoiceHandler{service: service, customers: customers, cache: cache}
}

func formInput(c *gin.Context) validation.InvoiceForm {
	return validation.InvoiceForm{
		CustomerID: c.PostForm("customerId"),
		Amount:     c.PostForm("amount"),
		Status:     c.PostForm("status"),
	}
}

// Create is the permissive form action: validation failures come back as
// a field-to-messages map for inline display. Success redirects to the
// invoice listing.
func (h *InvoiceHandler) Create(c *gin.Context) {
	res := h.service.Create(formInput(c))
	if !res.OK() {
		if res.Internal {
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": res.Message,
			"errors":  res.Errors,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, res.Location)
}

// Update is the strict form action: any failure yields one generic
// message.
func (h *InvoiceHandler) Update(c *gin.Context) {
	res := h.service.Update(c.Param("id"), formInput(c))
	if !res.OK() {
		if res.Internal {
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": res.Message})
		return
	}
	c.Redirect(http.StatusSeeOther, res.Location)
}

// Delete invalidates the listing but does not navigate; it is invoked
// from within the listing itself.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	res := h.service.Delete(c.Param("id"))
	if !res.OK() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// List serves the invoice listing from the view cache, recomputing it
// after a mutation has marked it stale.
func (h *InvoiceHandler) List(c *gin.Context) {
	if payload, ok := h.cache.Get(views.InvoiceListPath); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	// Snapshot the invalidation count before reading the store: a
	// mutation landing between the read and the cache fill must win.
	generation := h.cache.Invalidations(views.InvoiceListPath)

	list, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load invoices"})
		return
	}
	if list == nil {
		list = []models.Invoice{}
	}

	payload, err := json.Marshal(gin.H{"invoices": list})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load invoices"})
		return
	}

	h.cache.PutUnlessInvalidated(views.InvoiceListPath, payload, generation)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func (h *InvoiceHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customers.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load customers"})
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
