package postgres

import (
	"github.com/riskibarqy/football-lab/internal/domain/color"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
)

const favoriteColorsTable = "favorite_colors"

type favoriteColorTableModel struct {
	HexValue string `db:"hex_value"`
	Name     string `db:"name"`
	Message  string `db:"color_msg"`
}

func favoriteColorFromRow(row gateway.Row) color.FavoriteColor {
	return color.FavoriteColor{
		HexValue: row.String("hex_value"),
		Name:     row.String("name"),
		Message:  row.String("color_msg"),
	}
}

func favoriteColorsFromRows(rows gateway.Rows) []color.FavoriteColor {
	out := make([]color.FavoriteColor, 0, len(rows))
	for _, row := range rows {
		out = append(out, favoriteColorFromRow(row))
	}
	return out
}
