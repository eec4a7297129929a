package v1

import (
	"net/http"

	"github.com/finvue/backend/internal/facade"
	"github.com/finvue/backend/internal/httputil"
	"github.com/finvue/backend/internal/report"
	"github.com/gin-gonic/gin"
)

type DashboardResponse struct {
	Error *string                  `json:"error"` // The error, if any occurred
	Data  *report.DashboardSummary `json:"data"`  // The dashboard summary
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup, f *facade.Facade) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard(f))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the dashboard summary of the requesting user for the current month. The summary is cached, repeated reads within the TTL return the identical summary.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := f.Dashboard(currentUser(c))
		if err != nil {
			s := err.Error()
			c.JSON(status(err), DashboardResponse{Error: &s})
			return
		}

		c.JSON(http.StatusOK, DashboardResponse{Data: &summary})
	}
}
