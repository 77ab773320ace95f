package invoices

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"invoice-service-backend/internal/models"
	"invoice-service-backend/internal/validation"
	"invoice-service-backend/internal/views"
)

// Store is the persistence surface the mutation pipeline writes through.
// The production implementation wraps gorm; tests substitute in-memory
// fakes.
type Store interface {
	Insert(invoice *models.Invoice) error
	UpdateFields(id string, customerID string, amountCents int64, status string) error
	Delete(id string) error
	List() ([]models.Invoice, error)
}

// AuditLog records mutations after they are durably acknowledged.
type AuditLog interface {
	Record(entry *models.MutationAuditLog) error
}

// Invalidator marks a rendered view stale after a successful write.
type Invalidator interface {
	Invalidate(path string)
}

type Service struct {
	store Store
	audit AuditLog
	views Invalidator
	log   *zap.Logger
}

func NewService(store Store, audit AuditLog, invalidator Invalidator, log *zap.Logger) *Service {
	return &Service{store: store, audit: audit, views: invalidator, log: log}
}

// Create validates permissively: all field errors are accumulated and
// returned for inline display. On success the listing view is
// invalidated strictly after the insert is acknowledged, then the client
// is sent there.
func (s *Service) Create(form validation.InvoiceForm) Result {
	input, errs := form.Validate()
	if errs.Any() {
		return Result{
			Message: "Missing fields. Failed to create invoice.",
			Errors:  errs,
		}
	}

	invoice := models.Invoice{
		ID:          uuid.New(),
		CustomerID:  input.CustomerID,
		AmountCents: input.AmountCents,
		Status:      input.Status,
		Date:        time.Now().Format("2006-01-02"),
	}
	if err := s.store.Insert(&invoice); err != nil {
		s.log.Error("invoice insert failed", zap.Error(err))
		return Result{Message: "Database error. Failed to create invoice.", Internal: true}
	}

	s.recordAudit(invoice.ID.String(), "create", input)
	s.views.Invalidate(views.InvoiceListPath)
	return Result{Location: views.InvoiceListPath}
}

// Update is the strict path: any validation failure is fatal. A store
// failure is surfaced as a generic message, never swallowed.
func (s *Service) Update(id string, form validation.InvoiceForm) Result {
	input, errs := form.Validate()
	if errs.Any() {
		return Result{Message: "Invalid fields. Failed to update invoice."}
	}

	if err := s.store.UpdateFields(id, input.CustomerID, input.AmountCents, input.Status); err != nil {
		s.log.Error("invoice update failed", zap.String("id", id), zap.Error(err))
		return Result{Message: "Database error. Failed to update invoice.", Internal: true}
	}

	s.recordAudit(id, "update", input)
	s.views.Invalidate(views.InvoiceListPath)
	return Result{Location: views.InvoiceListPath}
}

// Delete issues one delete keyed by id. A missing id is a no-op. The
// listing view is still invalidated; no navigation follows since delete
// is invoked from within the listing itself.
func (s *Service) Delete(id string) Result {
	if err := s.store.Delete(id); err != nil {
		s.log.Error("invoice delete failed", zap.String("id", id), zap.Error(err))
		return Result{Message: "Database error. Failed to delete invoice.", Internal: true}
	}

	s.recordAudit(id, "delete", nil)
	s.views.Invalidate(views.InvoiceListPath)
	return Result{}
}

func (s *Service) List() ([]models.Invoice, error) {
	return s.store.List()
}

// recordAudit is best-effort: a failed audit write is logged and does
// not fail the mutation it describes.
func (s *Service) recordAudit(invoiceID, action string, details interface{}) {
	var payload datatypes.JSON
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			s.log.Warn("audit marshal failed", zap.String("action", action), zap.Error(err))
		} else {
			payload = datatypes.JSON(raw)
		}
	}

	entry := models.MutationAuditLog{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Action:    action,
		Details:   payload,
	}
	if err := s.audit.Record(&entry); err != nil {
		s.log.Warn("audit record failed", zap.String("action", action), zap.Error(err))
	}
}
