package planapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-planner/api/identity"
	dmn "github.com/beka-birhanu/vinom-planner/domain"
	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/planner"
	"github.com/beka-birhanu/vinom-planner/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlanController serves planning requests.
type PlanController struct {
	planner i.Planner
}

// NewPlanController initializes a PlanController.
func NewPlanController(p i.Planner) (*PlanController, error) {
	if p == nil {
		return nil, errors.New("plan controller needs a planner")
	}
	return &PlanController{planner: p}, nil
}

// RegisterPublic registers public routes.
func (pc *PlanController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (pc *PlanController) RegisterProtected(route *gin.RouterGroup) {
	plans := route.Group("/plans")
	{
		plans.POST("", pc.plan)
		plans.GET("", pc.history)
		plans.GET("/:ID", pc.planByID)
	}
}

// plan solves the submitted map.
func (pc *PlanController) plan(ctx *gin.Context) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var request PlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := pc.planner.Plan(ctx.Request.Context(), owner, request.Map)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newPlanResponse(record))
}

// planByID returns a stored plan of the caller.
func (pc *PlanController) planByID(ctx *gin.Context) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	record, err := pc.planner.ByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if record.Owner != owner {
		ctx.JSON(http.StatusNotFound, gin.H{"error": dmn.ErrPlanNotFound.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newPlanResponse(record))
}

// history lists the caller's recent plans.
func (pc *PlanController) history(ctx *gin.Context) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "0"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	records, err := pc.planner.History(ctx.Request.Context(), owner, limit)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := make([]*PlanResponse, 0, len(records))
	for _, r := range records {
		response = append(response, newPlanResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, grid.ErrMalformedMap),
		errors.Is(err, grid.ErrNoStart),
		errors.Is(err, grid.ErrNoGoal),
		errors.Is(err, planner.ErrInvalidTopology):
		return http.StatusBadRequest
	case errors.Is(err, dmn.ErrPlanNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
