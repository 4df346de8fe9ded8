package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careermatch/models"
	"careermatch/utils"
)

type HistoryHandler struct {
	matches *models.MatchHistoryModel
	exports *models.ExportHistoryModel
}

func NewHistoryHandler(db *sql.DB) *HistoryHandler {
	return &HistoryHandler{
		matches: models.NewMatchHistoryModel(db),
		exports: models.NewExportHistoryModel(db),
	}
}

// ListMatches returns the caller's smart-match history, newest first.
func (h *HistoryHandler) ListMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedError(c, "User not authenticated")
		return
	}

	matches, err := h.matches.GetByUserID(userID)
	if err != nil {
		utils.LogError("failed to load match history", err)
		utils.InternalServerError(c, "Failed to load match history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
		"total":   len(matches),
	})
}

// ListExports returns the caller's export history, newest first.
func (h *HistoryHandler) ListExports(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedError(c, "User not authenticated")
		return
	}

	exports, err := h.exports.GetByUserID(userID)
	if err != nil {
		utils.LogError("failed to load export history", err)
		utils.InternalServerError(c, "Failed to load export history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"exports": exports,
		"total":   len(exports),
	})
}

// DeleteExport removes one export history entry owned by the caller.
func (h *HistoryHandler) DeleteExport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedError(c, "User not authenticated")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid export id", nil)
		return
	}

	err = h.exports.DeleteByID(id, userID)
	if err == sql.ErrNoRows {
		utils.NotFoundError(c, "Export not found")
		return
	}
	if err != nil {
		utils.LogError("failed to delete export", err)
		utils.InternalServerError(c, "Failed to delete export")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Export deleted", nil)
}
