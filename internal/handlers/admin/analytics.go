package admin

import (
	"net/http"

	"freshmart_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	Store *store.Store
}

// 🟢 GET /api/admin/analytics
// Tout est recalculé à la volée depuis les commandes, rien n'est mis en cache
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Analytics())
}
