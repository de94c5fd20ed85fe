package solveapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-walker/api"
	dmn "github.com/beka-birhanu/vinom-walker/domain"
	"github.com/beka-birhanu/vinom-walker/loader"
	"github.com/beka-birhanu/vinom-walker/service"
	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var _ api.Controller = &SolveController{}

// SolveController serves maze generation and solving.
type SolveController struct {
	solver i.Solver
}

// NewSolveController initializes a SolveController.
func NewSolveController(s i.Solver) *SolveController {
	return &SolveController{solver: s}
}

// RegisterPublic registers public routes.
func (sc *SolveController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes/random", sc.random)
}

// RegisterProtected registers protected routes.
func (sc *SolveController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/solve", sc.solve)
		mazes.GET("/recent", sc.recent)
		mazes.GET("/:ID", sc.solution)
	}
}

// random returns the descriptor of a freshly generated perfect maze.
func (sc *SolveController) random(ctx *gin.Context) {
	var request RandomMazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := ctx.GetQuery("seed"); !ok {
		request.Seed = time.Now().UnixNano()
	}

	text, err := sc.solver.Generate(request.Width, request.Height, request.Seed)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.String(http.StatusOK, text)
}

// solve walks a submitted maze.
func (sc *SolveController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sol, err := sc.solver.Solve(ctx.Request.Context(), request.Maze, request.MaxSteps)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, sol)
	case errors.Is(err, loader.ErrInvalidDescriptor):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnsolved) && sol != nil:
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "solution": sol})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
	}
}

// solution retrieves a stored solution.
func (sc *SolveController) solution(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid solution id"})
		return
	}

	sol, err := sc.solver.ByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, dmn.ErrSolutionNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading solution"})
		return
	}

	ctx.JSON(http.StatusOK, sol)
}

// recent lists the IDs of the newest stored solutions.
func (sc *SolveController) recent(ctx *gin.Context) {
	var request RecentRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, total, err := sc.solver.Recent(ctx.Request.Context(), request.Limit)
	if err != nil {
		if errors.Is(err, service.ErrNoRecent) {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing solutions"})
		return
	}

	response := RecentResponse{IDs: make([]string, len(ids)), Total: total}
	for idx, id := range ids {
		response.IDs[idx] = id.String()
	}
	ctx.JSON(http.StatusOK, response)
}
