package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/minefield/internal/repository"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type CreateBoardDTO struct {
	Name string  `schema:"name"`
	Seed *uint64 `schema:"seed"`
}

func ParseCreateBoardDTO(src map[string][]string) (CreateBoardDTO, error) {
	var dto CreateBoardDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type ImportBoardDTO struct {
	Name  string `schema:"name"`
	Hints bool   `schema:"hints"`
}

func ParseImportBoardDTO(src map[string][]string) (ImportBoardDTO, error) {
	var dto ImportBoardDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type ViewBoardDTO struct {
	Uncover bool `schema:"uncover"`
}

func ParseViewBoardDTO(src map[string][]string) (ViewBoardDTO, error) {
	var dto ViewBoardDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type ListBoardsDTO struct {
	Name  *string `schema:"name"`
	Rows  *int    `schema:"rows"`
	Cols  *int    `schema:"cols"`
	Limit int     `schema:"limit"`
}

func ParseListBoardsDTO(src map[string][]string) (ListBoardsDTO, error) {
	var dto ListBoardsDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type BoardDTO struct {
	BoardId   string  `json:"board_id"`
	Name      *string `json:"name,omitempty"`
	Rows      int     `json:"rows"`
	Cols      int     `json:"cols"`
	MineCount int     `json:"mine_count"`
	Seed      *string `json:"seed,omitempty"`
	Text      string  `json:"text"`
	CreatedAt int64   `json:"created_at"`
}

func NewBoardDTO(b *repository.Board) *BoardDTO {
	var seed *string
	if b.Seed != nil {
		s := strconv.FormatUint(uint64(*b.Seed), 10)
		seed = &s
	}
	return &BoardDTO{
		BoardId:   strconv.FormatInt(b.BoardId, 10),
		Name:      b.Name,
		Rows:      b.RowCount,
		Cols:      b.ColCount,
		MineCount: b.MineCount,
		Seed:      seed,
		Text:      b.Body,
		CreatedAt: b.CreatedAt.Time.UnixMilli(),
	}
}
