package v1

import (
	"net/http"

	"github.com/finvue/backend/internal/facade"
	"github.com/finvue/backend/internal/httputil"
	"github.com/finvue/backend/internal/report"
	"github.com/gin-gonic/gin"
)

type AlertsResponse struct {
	Error *string              `json:"error"` // The error, if any occurred
	Data  *report.AlertsResult `json:"data"`  // The alerts
}

// RegisterAlertsRoutes registers the routes for alerts with
// the RouterGroup that is passed.
func RegisterAlertsRoutes(r *gin.RouterGroup, f *facade.Facade) {
	r.OPTIONS("", OptionsAlerts)
	r.GET("", GetAlerts(f))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Router			/v1/alerts [options]
func OptionsAlerts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get alerts
// @Description	Returns the rule based alerts of the requesting user followed by insights from the external source, if one is configured and reachable
// @Tags			Alerts
// @Produce		json
// @Success		200	{object}	AlertsResponse
// @Failure		500	{object}	AlertsResponse
// @Router			/v1/alerts [get]
func GetAlerts(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		alerts, err := f.Alerts(c.Request.Context(), currentUser(c))
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AlertsResponse{Error: &s})
			return
		}

		c.JSON(http.StatusOK, AlertsResponse{Data: &alerts})
	}
}
