package postgres

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-lab/internal/domain/color"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
	qb "github.com/riskibarqy/football-lab/internal/platform/querybuilder"
)

var favoriteColorColumns = qb.ColumnsOf(favoriteColorTableModel{})

type FavoriteColorRepository struct {
	exec gateway.Executor
}

func NewFavoriteColorRepository(exec gateway.Executor) *FavoriteColorRepository {
	return &FavoriteColorRepository{exec: exec}
}

func (r *FavoriteColorRepository) List(ctx context.Context) ([]color.FavoriteColor, error) {
	stmt, err := listFavoriteColorsStatement()
	if err != nil {
		return nil, err
	}

	rows, err := r.exec.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("select favorite colors: %w", err)
	}

	return favoriteColorsFromRows(rows), nil
}

func (r *FavoriteColorRepository) ListWithSelection(ctx context.Context, hexValue string) ([]color.FavoriteColor, color.FavoriteColor, bool, error) {
	list, err := listFavoriteColorsStatement()
	if err != nil {
		return nil, color.FavoriteColor{}, false, err
	}
	selected, err := selectStatement("favorite_color_by_hex",
		qb.Select(favoriteColorColumns...).
			From(favoriteColorsTable).
			Where(qb.Eq("hex_value", hexValue)).
			Limit(1),
	)
	if err != nil {
		return nil, color.FavoriteColor{}, false, err
	}

	const task = "pick-color"
	results, err := r.exec.Batch(ctx, task, list, selected)
	if err != nil {
		return nil, color.FavoriteColor{}, false, fmt.Errorf("select favorite color selection: %w", err)
	}
	if err := expectResults(task, results, 2); err != nil {
		return nil, color.FavoriteColor{}, false, err
	}

	colors := favoriteColorsFromRows(results[0])
	row, ok := results[1].First()
	if !ok {
		return colors, color.FavoriteColor{}, false, nil
	}

	return colors, favoriteColorFromRow(row), true, nil
}

func (r *FavoriteColorRepository) CreateAndList(ctx context.Context, item color.FavoriteColor) ([]color.FavoriteColor, error) {
	insert, err := insertStatement("insert_favorite_color", favoriteColorsTable, favoriteColorTableModel{
		HexValue: item.HexValue,
		Name:     item.Name,
		Message:  item.Message,
	}, "")
	if err != nil {
		return nil, err
	}
	list, err := listFavoriteColorsStatement()
	if err != nil {
		return nil, err
	}

	const task = "add-color"
	results, err := r.exec.Batch(ctx, task, insert, list)
	if err != nil {
		return nil, fmt.Errorf("insert favorite color: %w", err)
	}
	if err := expectResults(task, results, 2); err != nil {
		return nil, err
	}

	return favoriteColorsFromRows(results[1]), nil
}

func listFavoriteColorsStatement() (gateway.Statement, error) {
	return selectStatement("list_favorite_colors",
		qb.Select(favoriteColorColumns...).
			From(favoriteColorsTable).
			OrderBy("name", "hex_value"),
	)
}
