package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/minefield/internal/minefield"
)

type Board struct {
	BoardId   int64              `db:"board_id"`
	Name      *string            `db:"name"`
	RowCount  int                `db:"row_count"`
	ColCount  int                `db:"col_count"`
	MineCount int                `db:"mine_count"`
	Seed      *int64             `db:"seed"`
	Body      string             `db:"body"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

// Grid decodes the stored debug text.
func (b Board) Grid() *minefield.Grid {
	return minefield.Decode(b.Body)
}

type CreateBoardParams struct {
	Name *string
	Seed *uint64
}

func (p CreateBoardParams) UpdateArgs(args *pgx.NamedArgs) *pgx.NamedArgs {
	(*args)["name"] = p.Name
	if p.Seed != nil {
		(*args)["seed"] = int64(*p.Seed)
	} else {
		(*args)["seed"] = nil
	}
	return args
}

func (q Queries) CreateBoard(
	ctx context.Context, g *minefield.Grid, params CreateBoardParams,
) (*Board, error) {
	dims := g.Dimensions()
	args := pgx.NamedArgs{
		"row_count":  dims.Rows,
		"col_count":  dims.Cols,
		"mine_count": g.MineCount(),
		"body":       g.Text(),
	}
	params.UpdateArgs(&args)

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO board (
			name, row_count, col_count, mine_count, seed, body
		)
		VALUES (
			@name, @row_count, @col_count, @mine_count, @seed, @body
		)
		RETURNING *;`,
		args,
	)
	board, err := pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[Board],
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return nil, ErrNameTaken
	}
	return board, err
}

func (q Queries) FetchBoard(ctx context.Context, boardId int64) (*Board, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM board WHERE board_id = $1",
		boardId,
	)
	board, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Board])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return board, err
}

type BoardFilter struct {
	Name       *string
	Dimensions *minefield.Dimensions
	Limit      int
}

func (f BoardFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Name != nil {
		clauses = append(clauses, "name = @name")
		args["name"] = *f.Name
	}
	if f.Dimensions != nil {
		clauses = append(clauses, "row_count = @row_count", "col_count = @col_count")
		args["row_count"] = f.Dimensions.Rows
		args["col_count"] = f.Dimensions.Cols
	}
	return strings.Join(clauses, " AND "), args
}

// ListBoards returns the boards matching filter, newest first.
func (q Queries) ListBoards(ctx context.Context, filter BoardFilter) ([]Board, error) {
	query := "SELECT * FROM board"

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	query += " ORDER BY board_id DESC"
	if filter.Limit > 0 {
		query += " LIMIT @limit"
		args["limit"] = filter.Limit
	}

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Board])
}
