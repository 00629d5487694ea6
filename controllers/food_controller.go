package controllers

import (
	"net/http"

	"github.com/ankit-0705/Macrology/pkg/logger"
	"github.com/ankit-0705/Macrology/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
	log   *logger.Logger
}

func NewFoodController(foods *services.FoodService, log *logger.Logger) *FoodController {
	return &FoodController{foods: foods, log: log}
}

func (ctl *FoodController) Search(c *gin.Context) {
	foods, err := ctl.foods.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}
