package controllers

import (
	"net/http"
	"strconv"

	"github.com/ankit-0705/Macrology/middlewares"
	"github.com/ankit-0705/Macrology/pkg/logger"
	"github.com/ankit-0705/Macrology/services"

	"github.com/gin-gonic/gin"
)

type MacroController struct {
	macros *services.MacroService
	log    *logger.Logger
}

func NewMacroController(macros *services.MacroService, log *logger.Logger) *MacroController {
	return &MacroController{macros: macros, log: log}
}

func (ctl *MacroController) Add(c *gin.Context) {
	var in services.AddEntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ctl.macros.AddEntry(c.Request.Context(), in)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Macro entry logged successfully",
		"macro":   entry,
	})
}

// Logs lists a user's entries, filtered by exact date or by year.
func (ctl *MacroController) Logs(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	logs, err := ctl.macros.ListEntries(c.Request.Context(), uint(userID), c.Query("date"), c.Query("year"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// DeleteMine wipes the authenticated caller's own log.
func (ctl *MacroController) DeleteMine(c *gin.Context) {
	count, err := ctl.macros.DeleteUserEntries(c.Request.Context(), middlewares.GetUserID(c))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Your macro entries were deleted",
		"deletedCount": count,
	})
}

// DeleteAll wipes every entry for every user. Routed behind auth plus the
// admin key.
func (ctl *MacroController) DeleteAll(c *gin.Context) {
	count, err := ctl.macros.DeleteAllEntries(c.Request.Context())
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "All macro entries deleted",
		"deletedCount": count,
	})
}
