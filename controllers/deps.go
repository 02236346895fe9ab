package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bhinnashad-api/apperrors"
	"bhinnashad-api/config"
	"bhinnashad-api/events"
	"bhinnashad-api/services"
)

// Publisher is wired by main; stays a no-op when no broker is configured.
var Publisher events.Publisher = events.NoopPublisher{}

func tableService() *services.TableService {
	return services.NewTableService(config.DB)
}

func billingService() *services.BillingService {
	return services.NewBillingService(config.DB, tableService(), Publisher)
}

func orderService() *services.OrderService {
	return services.NewOrderService(config.DB, tableService(), billingService(), Publisher)
}

func stockService() *services.StockService {
	return services.NewStockService(config.DB)
}

func menuService() *services.MenuService {
	return services.NewMenuService(config.DB)
}

func onlineOrderService() *services.OnlineOrderService {
	return services.NewOnlineOrderService(config.DB)
}

func reportService() *services.ReportService {
	return services.NewReportService(config.DB)
}

// respondError maps the service failure taxonomy onto HTTP statuses. The
// already-paid case gets its own code so a double-submitted settlement can
// be treated as benign by the UI.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var transitionErr *apperrors.InvalidTransitionError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNothingToBill):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyPaid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "already_paid"})
	case errors.Is(err, apperrors.ErrAlreadyBilled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr), errors.As(err, &transitionErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
