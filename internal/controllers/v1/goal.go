package v1

import (
	"net/http"

	"github.com/finvue/backend/internal/httputil"
	"github.com/finvue/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
//
// Goals do not feed into the dashboard totals, so goal mutations do not
// invalidate the cache. The dashboard picks up new goal state when its
// cache entry expires.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGoals)
		r.GET("", GetGoals)
		r.POST("", CreateGoal)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoalProgress)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var goal models.Goal
	err = models.DB.Where(&models.Goal{UserID: currentUser(c)}).First(&goal, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		List goals
// @Description	Returns a list of goals for the requesting user
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
func GetGoals(c *gin.Context) {
	goals, err := models.Goals(currentUser(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{Error: &s})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Create goal
// @Description	Creates a new goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func CreateGoal(c *gin.Context) {
	var editable GoalEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &s})
		return
	}

	goal := editable.model(currentUser(c))

	err = models.DB.Create(&goal).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	data := newGoal(goal)
	c.JSON(http.StatusCreated, GoalResponse{Data: &data})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	var goal models.Goal
	err = models.DB.Where(&models.Goal{UserID: currentUser(c)}).First(&goal, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	data := newGoal(goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Update goal progress
// @Description	Updates the saved amount of a goal. All other fields of a goal are immutable.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalProgressUpdate	true	"Goal progress"
// @Router			/v1/goals/{id} [patch]
func UpdateGoalProgress(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	var goal models.Goal
	err = models.DB.Where(&models.Goal{UserID: currentUser(c)}).First(&goal, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	var update GoalProgressUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &s})
		return
	}

	goal.SavedAmount = update.SavedAmount
	err = models.DB.Save(&goal).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	data := newGoal(goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}
