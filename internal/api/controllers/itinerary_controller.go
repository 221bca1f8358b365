package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelplanner/internal/models/request_models"
	"travelplanner/internal/services"
	"travelplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	log              *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, log *zap.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		log:              log,
	}
}

// CreateItineraryHandler godoc
// @Summary Generate a travel itinerary
// @Description Prompts the configured model once and returns its JSON itinerary unchanged
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Destination and number of days (1-30)"
// @Success 200 {object} response_models.Itinerary
// @Failure 400 {string} string "Invalid request"
// @Failure 500 {string} string "Invalid AI response format"
// @Router /api/message [post]
func (ic *ItineraryController) CreateItineraryHandler(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleItineraryError(c, ic.log, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err))
		return
	}

	generated, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleItineraryError(c, ic.log, err)
		return
	}

	utils.RespondJSONBytes(c, generated.Raw)
}
