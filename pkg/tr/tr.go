// Package tr связывает репозитории с менеджером транзакций avito-tech.
package tr

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Conn возвращает транзакцию, открытую менеджером в ctx, либо сам пул, если транзакции нет.
// Репозитории выполняют запросы только через Conn, поэтому одинаково работают в транзакции и вне её.
func Conn(ctx context.Context, pool *pgxpool.Pool) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, pool)
}

// NewManager создаёт менеджер транзакций поверх пула.
func NewManager(pool *pgxpool.Pool) *manager.Manager {
	return manager.Must(trmpgx.NewDefaultFactory(pool))
}
