package controllers

import (
	"net/http"

	"github.com/ankit-0705/Macrology/middlewares"
	"github.com/ankit-0705/Macrology/pkg/logger"
	"github.com/ankit-0705/Macrology/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	goals *services.GoalService
	log   *logger.Logger
}

func NewGoalController(goals *services.GoalService, log *logger.Logger) *GoalController {
	return &GoalController{goals: goals, log: log}
}

func (ctl *GoalController) Get(c *gin.Context) {
	goal, err := ctl.goals.Get(c.Request.Context(), middlewares.GetUserID(c))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (ctl *GoalController) Put(c *gin.Context) {
	var in services.GoalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.goals.Upsert(c.Request.Context(), middlewares.GetUserID(c), in)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Progress reports consumed-vs-goal per macro for one day (today if the
// date query parameter is absent).
func (ctl *GoalController) Progress(c *gin.Context) {
	progress, err := ctl.goals.Progress(c.Request.Context(), middlewares.GetUserID(c), c.Query("date"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
