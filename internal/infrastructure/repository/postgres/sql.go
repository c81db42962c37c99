package postgres

import (
	"fmt"

	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
	qb "github.com/riskibarqy/football-lab/internal/platform/querybuilder"
)

func selectStatement(name string, builder *qb.SelectBuilder) (gateway.Statement, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return gateway.Statement{}, fmt.Errorf("build %s query: %w", name, err)
	}
	return gateway.Statement{Name: name, SQL: query, Args: args}, nil
}

func insertStatement(name, table string, model any, suffix string) (gateway.Statement, error) {
	query, args, err := qb.InsertModel(table, model, suffix)
	if err != nil {
		return gateway.Statement{}, fmt.Errorf("build %s query: %w", name, err)
	}
	return gateway.Statement{Name: name, SQL: query, Args: args}, nil
}

// expectResults guards against a gateway returning fewer result sets than
// statements sent.
func expectResults(task string, results []gateway.Rows, want int) error {
	if len(results) != want {
		return fmt.Errorf("%s: expected %d result sets, got %d", task, want, len(results))
	}
	return nil
}
