package handlers

import (
	"disposal-locator-service/internal/adapters/position"
	"disposal-locator-service/internal/api/dto"
	"disposal-locator-service/internal/domain"
	"disposal-locator-service/internal/platform/obs"
	"disposal-locator-service/internal/ports"
	"disposal-locator-service/internal/services"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	minRadiusKm = 1
	maxRadiusKm = 10
	maxTopN     = 20
)

// LocationHandler exposes catalog listing and the two ranking modes.
type LocationHandler struct {
	Locator         *services.Locator
	Geocoder        ports.Geocoder
	DefaultRadiusKm float64
	TopN            int
}

func (h *LocationHandler) List(c *gin.Context) {
	locs := h.Locator.Catalog().Locations()

	res := dto.ListLocationsResponse{Locations: make([]dto.LocationResponse, 0, len(locs))}
	for _, l := range locs {
		res.Locations = append(res.Locations, dto.FromLocation(l))
	}

	writeJSON(c, http.StatusOK, res)
}

// Nearby lists locations within a radius of the caller's reported position.
func (h *LocationHandler) Nearby(c *gin.Context) {
	radius, err := floatQuery(c, "radius", h.DefaultRadiusKm)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !(radius >= minRadiusKm && radius <= maxRadiusKm) {
		writeError(c, http.StatusBadRequest, fmt.Sprintf("radius must be between %d and %d", minRadiusKm, maxRadiusKm))
		return
	}

	resolver := position.NewQueryResolver(c.Request.URL.Query())
	result, err := h.Locator.NearbySearch(c.Request.Context(), resolver, radius)
	if err != nil {
		var geoErr *domain.GeolocationError
		var invalid *position.InvalidPositionError
		switch {
		case errors.As(err, &geoErr):
			writeJSON(c, http.StatusUnprocessableEntity, dto.GeolocationErrorResponse{
				Error:  geoErr.Error(),
				Reason: string(geoErr.Reason),
			})
		case errors.As(err, &invalid):
			writeError(c, http.StatusBadRequest, invalid.Error())
		default:
			zap.L().Error("nearby search failed", zap.String("req_id", obs.RequestID(c.Request.Context())), zap.Error(err))
			writeError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(c, http.StatusOK, dto.NearbyResponse{
		Origin:    dto.FromCoordinates(result.Origin),
		RadiusKm:  result.RadiusKm,
		Locations: dto.FromRanked(result.Locations),
	})
}

// Search geocodes a free-text address and returns the closest locations to it.
func (h *LocationHandler) Search(c *gin.Context) {
	n, err := intQuery(c, "n", h.TopN)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if n < 1 || n > maxTopN {
		writeError(c, http.StatusBadRequest, fmt.Sprintf("n must be between 1 and %d", maxTopN))
		return
	}

	result, err := h.Locator.AddressSearch(c.Request.Context(), h.Geocoder, c.Query("address"), n)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyAddress):
			writeError(c, http.StatusBadRequest, "Please enter an address.")
		case errors.Is(err, domain.ErrAddressNotFound):
			writeError(c, http.StatusNotFound, "Could not find location. Please try a different address.")
		default:
			zap.L().Error("address search failed", zap.String("req_id", obs.RequestID(c.Request.Context())), zap.Error(err))
			writeError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(c, http.StatusOK, dto.SearchResponse{
		Address:   result.Address,
		Searched:  dto.FromCoordinates(result.Searched),
		Locations: dto.FromRanked(result.Locations),
	})
}
