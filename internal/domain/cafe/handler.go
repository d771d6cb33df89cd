package cafe

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cafeapi/internal/pkg/response"
)

const (
	msgNoCafes         = "Sorry, there are no cafes available."
	msgLocationMiss    = "Sorry, we don't have a coffee at that location."
	msgAdded           = "Successfully added the new cafe."
	msgPriceUpdated    = "Successfully updated the price."
	msgIDNotFound      = "Sorry a cafe with that id was not found in the database."
	msgDeleted         = "Cafe deleted successfully."
	msgInternal        = "Internal server error."
	uniqueViolationTag = "unique_violation"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetRandom returns one cafe chosen at random.
// @Summary  Random cafe
// @Success  200 {object} map[string]interface{} "cafe object under key cafe"
// @Failure  404 {object} map[string]interface{} "table is empty"
// @Router   /random [GET]
func (h *Handler) GetRandom(c *gin.Context) {
	cafe, err := h.svc.Random(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoCafes) {
			response.NotFound(c, http.StatusNotFound, msgNoCafes)
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafe": ToJSON(cafe)})
}

// GetAll returns every cafe.
// @Summary  All cafes
// @Success  200 {array} map[string]interface{}
// @Router   /all [GET]
func (h *Handler) GetAll(c *gin.Context) {
	cafes, err := h.svc.All(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, listJSON(cafes))
}

// Search returns cafes whose location equals ?location exactly.
// A miss answers 200 with an error body.
// @Summary  Search by location
// @Param    location query string true "exact location"
// @Success  200 {array} map[string]interface{}
// @Router   /search [GET]
func (h *Handler) Search(c *gin.Context) {
	location, ok := c.GetQuery("location")
	if !ok {
		response.NotFound(c, http.StatusOK, msgLocationMiss)
		return
	}

	cafes, err := h.svc.SearchByLocation(c.Request.Context(), location)
	if err != nil {
		internalError(c, err)
		return
	}
	if len(cafes) == 0 {
		response.NotFound(c, http.StatusOK, msgLocationMiss)
		return
	}

	c.JSON(http.StatusOK, listJSON(cafes))
}

// Add creates a cafe from query parameters.
// @Summary  Add cafe
// @Param    name           query string true  "unique name"
// @Param    map_url        query string true  "map link"
// @Param    img_url        query string true  "image link"
// @Param    location       query string true  "location"
// @Param    seats          query string true  "seats, e.g. 20-30"
// @Param    has_toilet     query string true  "stored as submitted"
// @Param    has_wifi       query string true  "stored as submitted"
// @Param    has_sockets    query string true  "stored as submitted"
// @Param    can_take_calls query string true  "stored as submitted"
// @Param    coffee_price   query string false "e.g. £2.50"
// @Success  200 {object} map[string]interface{}
// @Failure  500 {object} map[string]interface{} "persistence error, e.g. duplicate name"
// @Router   /add [POST]
func (h *Handler) Add(c *gin.Context) {
	req := addCafeRequestFromQuery(c)

	if _, err := h.svc.Add(c.Request.Context(), req); err != nil {
		ginErr := c.Error(err)
		if IsUniqueViolation(err) {
			ginErr.SetMeta(gin.H{"reason": uniqueViolationTag, "name": req.Name})
		}
		response.ErrorMessage(c, http.StatusInternalServerError, msgInternal)
		return
	}

	response.Response(c, http.StatusOK, msgAdded)
}

// UpdatePrice sets coffee_price of one cafe.
// @Summary  Update coffee price
// @Param    id        path  int    true  "cafe id"
// @Param    new_price query string false "new price, absent clears it"
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} map[string]interface{}
// @Router   /update-price/{id} [PATCH]
func (h *Handler) UpdatePrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.RouteNotFound(c)
		return
	}

	var newPrice *string
	if price, ok := c.GetQuery("new_price"); ok {
		newPrice = &price
	}

	if err := h.svc.UpdatePrice(c.Request.Context(), id, newPrice); err != nil {
		if errors.Is(err, ErrCafeNotFound) {
			response.NotFound(c, http.StatusNotFound, msgIDNotFound)
			return
		}
		internalError(c, err)
		return
	}

	response.Response(c, http.StatusOK, msgPriceUpdated)
}

// ReportClosed deletes a cafe. The api-key check runs in middleware before this.
// @Summary  Delete closed cafe
// @Param    id      path  int    true "cafe id"
// @Param    api-key query string true "service api key"
// @Success  200 {object} map[string]interface{}
// @Failure  403 {object} map[string]interface{}
// @Failure  404 {object} map[string]interface{}
// @Router   /report-closed/{id} [DELETE]
func (h *Handler) ReportClosed(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.RouteNotFound(c)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCafeNotFound) {
			response.ErrorMessage(c, http.StatusNotFound, msgIDNotFound)
			return
		}
		internalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, msgDeleted)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	response.ErrorMessage(c, http.StatusInternalServerError, msgInternal)
}
