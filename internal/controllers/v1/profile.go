package v1

import (
	"net/http"

	"github.com/finvue/backend/internal/facade"
	"github.com/finvue/backend/internal/httputil"
	"github.com/finvue/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProfileEditable contains the fields a user can change on their profile.
// Both fields are optional so that a PATCH only touches what it sends.
type ProfileEditable struct {
	MonthlyIncome *decimal.Decimal `json:"monthlyIncome" example:"50000" minimum:"0"` // Self-reported monthly income
	Currency      *string          `json:"currency" example:"INR"`                    // Display currency for the dashboard
}

// Profile is the representation of a Profile in API v1.
type Profile struct {
	models.DefaultModel
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" example:"50000"` // Self-reported monthly income
	Currency      string          `json:"currency" example:"INR"`        // Display currency for the dashboard
}

// newProfile returns the API v1 representation of the resource
func newProfile(model models.Profile) Profile {
	return Profile{
		DefaultModel:  model.DefaultModel,
		MonthlyIncome: model.MonthlyIncome,
		Currency:      model.Currency,
	}
}

type ProfileResponse struct {
	Error *string  `json:"error"` // The error, if any occurred
	Data  *Profile `json:"data"`  // The Profile data
}

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
//
// The profile is a singleton per user, so there is no collection and no
// ID in the path.
func RegisterProfileRoutes(r *gin.RouterGroup, f *facade.Facade) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile(f))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the profile of the requesting user, creating it with defaults on first access
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	profile, err := models.ProfileFor(currentUser(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	data := newProfile(profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Updates the profile of the requesting user. Fields that are not sent stay unchanged. The cached dashboard is invalidated since it renders the profile currency.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [patch]
func UpdateProfile(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		profile, err := models.ProfileFor(user)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ProfileResponse{Error: &s})
			return
		}

		var editable ProfileEditable
		err = httputil.BindData(c, &editable)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ProfileResponse{Error: &s})
			return
		}

		if editable.MonthlyIncome != nil {
			profile.MonthlyIncome = *editable.MonthlyIncome
		}

		if editable.Currency != nil {
			profile.Currency = *editable.Currency
		}

		err = models.DB.Save(&profile).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ProfileResponse{Error: &s})
			return
		}

		f.InvalidateUser(user)

		data := newProfile(profile)
		c.JSON(http.StatusOK, ProfileResponse{Data: &data})
	}
}
