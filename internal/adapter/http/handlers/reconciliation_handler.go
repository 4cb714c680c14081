package handlers

import (
	"errors"
	"net/http"

	response "payment_orchestrator/internal/adapter/http/dto/response"
	"payment_orchestrator/internal/infrastructure/logger"
	"payment_orchestrator/internal/usecase"
	"payment_orchestrator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReconciliationHandler serves the ledger of customers left behind by failed
// composite operations.

type ReconciliationHandler struct {
	usecase usecase.IOrphanRecordUseCase
}

func NewReconciliationHandler(uc usecase.IOrphanRecordUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// GetRecord godoc
// @Summary      Get a reconciliation record
// @Tags         reconciliation
// @Produce      json
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  response.OrphanRecordResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /reconciliation/{id} [get]
func (h *ReconciliationHandler) GetRecord(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReconciliationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrphanRecord(rec))
}

// ListRecords godoc
// @Summary      List reconciliation records of a connected account
// @Tags         reconciliation
// @Produce      json
// @Param        stripe_account  query     string  true  "Connected account"
// @Success      200             {array}   response.OrphanRecordResponse
// @Failure      400             {object}  pkg.HTTPError
// @Router       /reconciliation [get]
func (h *ReconciliationHandler) ListRecords(c *gin.Context) {
	records, err := h.usecase.ListByStripeAccount(c.Request.Context(), c.Query("stripe_account"))
	if err != nil {
		appErr := mapReconciliationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrphanRecords(records))
}

func mapReconciliationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrphanRecordID), errors.Is(err, usecase.ErrInvalidStripeAccount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrphanRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Reconciliation record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrphanRepositoryNotConfigured):
		return pkg.NewDomainErrorSimple("LEDGER_UNAVAILABLE", "Reconciliation ledger not configured", http.StatusServiceUnavailable)
	default:
		logger.Error("reconciliation lookup failed", zap.Error(err))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
