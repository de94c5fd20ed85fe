// Package solveapi exposes the maze solver over HTTP.
package solveapi

// SolveRequest is a maze submitted for solving. A zero MaxSteps selects the
// server default.
type SolveRequest struct {
	Maze     string `json:"maze" binding:"required"`
	MaxSteps int    `json:"max_steps" binding:"gte=0"`
}

// RandomMazeRequest holds the query parameters of the random maze endpoint.
type RandomMazeRequest struct {
	Width  int   `form:"width" binding:"required,gt=0"`
	Height int   `form:"height" binding:"required,gt=0"`
	Seed   int64 `form:"seed"`
}

// RecentRequest holds the query parameters of the recent solutions endpoint.
type RecentRequest struct {
	Limit int `form:"limit,default=10" binding:"gte=1,lte=100"`
}

// RecentResponse lists the newest stored solutions.
type RecentResponse struct {
	IDs   []string `json:"ids"`
	Total int64    `json:"total"`
}
