package handlers

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/repository"
)

const maxBoardBytes = 1 << 20

type BoardRepository interface {
	CreateBoard(context.Context, *minefield.Grid, repository.CreateBoardParams) (*repository.Board, error)
	FetchBoard(context.Context, int64) (*repository.Board, error)
	ListBoards(context.Context, repository.BoardFilter) ([]repository.Board, error)
}

type BoardHandler struct {
	logger logrus.FieldLogger
	repo   BoardRepository

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewBoardHandler(
	logger logrus.FieldLogger,
	repo BoardRepository,
	rnd *rand.Rand,
) *BoardHandler {
	return &BoardHandler{
		logger: logger,
		repo:   repo,
		rnd:    rnd,
	}
}

func (h *BoardHandler) nextSeed() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rnd.Uint64()
}

func optionalName(name string) *string {
	if name == "" {
		return nil
	}
	return &name
}

func (h *BoardHandler) store(
	w http.ResponseWriter, r *http.Request,
	g *minefield.Grid, params repository.CreateBoardParams,
) {
	board, err := h.repo.CreateBoard(r.Context(), g, params)
	if errors.Is(err, repository.ErrNameTaken) {
		sendError(w, h.logger, http.StatusConflict, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to store board")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	sendJSONOrLog(w, h.logger, NewBoardDTO(board))
}

// NewBoard generates a random standard board. The seed is taken from the
// query when present so the same board can be generated again.
func (h *BoardHandler) NewBoard(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateBoardDTO(r.URL.Query())
	if err != nil {
		sendError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var seed uint64
	if dto.Seed != nil {
		seed = *dto.Seed
	} else {
		seed = h.nextSeed()
	}

	g := minefield.NewRandom(minefield.NewSource(seed))
	h.logger.WithFields(logrus.Fields{
		"seed":  seed,
		"mines": g.MineCount(),
	}).Debug("generated board")

	h.store(w, r, g, repository.CreateBoardParams{
		Name: optionalName(dto.Name),
		Seed: &seed,
	})
}

// ImportBoard stores a board sent as debug text in the request body. With
// hints=true the hints in the body are discarded and derived from its mines.
func (h *BoardHandler) ImportBoard(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseImportBoardDTO(r.URL.Query())
	if err != nil {
		sendError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	g, err := minefield.DecodeReader(http.MaxBytesReader(w, r.Body, maxBoardBytes))
	if err != nil {
		sendError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if dto.Hints {
		g.ClearHints()
		g.GenerateHints()
	}

	h.store(w, r, g, repository.CreateBoardParams{
		Name: optionalName(dto.Name),
	})
}

func (h *BoardHandler) fetch(w http.ResponseWriter, r *http.Request) (*repository.Board, bool) {
	boardId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	board, err := h.repo.FetchBoard(r.Context(), boardId)
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch board from db")
		return nil, false
	}

	return board, true
}

func (h *BoardHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	board, ok := h.fetch(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, h.logger, NewBoardDTO(board))
}

// FetchText responds with the raw debug text of a board.
func (h *BoardHandler) FetchText(w http.ResponseWriter, r *http.Request) {
	board, ok := h.fetch(w, r)
	if !ok {
		return
	}
	sendTextOrLog(w, h.logger, board.Grid().Text())
}

// View responds with the revealed display of a board. Stored boards have no
// discovered cells, so the view is fully masked unless uncover is set.
func (h *BoardHandler) View(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseViewBoardDTO(r.URL.Query())
	if err != nil {
		sendError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	board, ok := h.fetch(w, r)
	if !ok {
		return
	}

	g := board.Grid()
	if dto.Uncover {
		g.RevealAll()
	}
	sendTextOrLog(w, h.logger, g.Revealed())
}

func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseListBoardsDTO(r.URL.Query())
	if err != nil {
		sendError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	filter := repository.BoardFilter{Name: dto.Name, Limit: dto.Limit}
	if dto.Rows != nil || dto.Cols != nil {
		if dto.Rows == nil || dto.Cols == nil {
			sendError(w, h.logger, http.StatusBadRequest,
				errors.New("rows and cols must be given together"))
			return
		}
		filter.Dimensions = &minefield.Dimensions{Rows: *dto.Rows, Cols: *dto.Cols}
	}

	boards, err := h.repo.ListBoards(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to list boards")
		return
	}

	dtos := make([]*BoardDTO, 0, len(boards))
	for i := range boards {
		dtos = append(dtos, NewBoardDTO(&boards[i]))
	}
	sendJSONOrLog(w, h.logger, dtos)
}
