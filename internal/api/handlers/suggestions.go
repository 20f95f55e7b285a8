package handlers

import (
	"disposal-locator-service/internal/api/dto"
	"disposal-locator-service/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxSuggestionLimit = 50

type SuggestionHandler struct {
	Locator *services.Locator
	Limit   int
}

func (h *SuggestionHandler) List(c *gin.Context) {
	limit, err := intQuery(c, "limit", h.Limit)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if limit < 1 || limit > maxSuggestionLimit {
		writeError(c, http.StatusBadRequest, "limit must be between 1 and 50")
		return
	}

	writeJSON(c, http.StatusOK, dto.SuggestionsResponse{
		Suggestions: h.Locator.Suggest(c.Query("q"), limit),
	})
}
