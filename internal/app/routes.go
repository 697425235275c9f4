package app

import (
	"math/rand/v2"

	"github.com/vancomm/minefield/internal/handlers"
	"github.com/vancomm/minefield/internal/minefield"
)

// createRand seeds the server generator from config when a seed is set so
// that a fresh server hands out the same boards.
func (a *App) createRand() *rand.Rand {
	seed := a.config.Seed
	if seed == 0 {
		seed = minefield.NewRandomSeed()
	}
	return minefield.NewSource(seed)
}

func (a *App) loadRoutes(repo handlers.BoardRepository) {
	board := handlers.NewBoardHandler(a.logger, repo, a.createRand())

	a.router.HandleFunc("GET /status", handlers.Status)

	a.router.HandleFunc("POST /boards", board.NewBoard)
	a.router.HandleFunc("PUT /boards", board.ImportBoard)
	a.router.HandleFunc("GET /boards", board.List)
	a.router.HandleFunc("GET /boards/{id}", board.Fetch)
	a.router.HandleFunc("GET /boards/{id}/text", board.FetchText)
	a.router.HandleFunc("GET /boards/{id}/view", board.View)
}
