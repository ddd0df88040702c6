package ports

import (
	"context"

	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

// KeyValueStore almacenamiento durable local al dispositivo (sobrevive reinicios).
// Set escribe todas las entradas de una vez: o quedan todas o ninguna.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, entries map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

// OrderStatementRenderer genera el extracto de pedidos recibidos por un proveedor.
type OrderStatementRenderer interface {
	RenderOrderStatement(ctx context.Context, supplier entity.User, orders []entity.SupplierOrder) ([]byte, error)
}
