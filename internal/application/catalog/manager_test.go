package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bulkbuy/internal/application/catalog"
	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/application/ports/portstest"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

const supplierID = "sup-1"

func product(id, name string, qty, price int64, owner string) entity.Product {
	return entity.Product{
		ID: id, Name: name, SupplierID: owner,
		Quantity: decimal.NewFromInt(qty), Price: decimal.NewFromInt(price),
	}
}

func TestList_FiltroDefensivoYOrden(t *testing.T) {
	api := &portstest.FakeMarketplace{
		SupplierProductsFn: func(id string) (*entity.SupplierStorefront, error) {
			return &entity.SupplierStorefront{SupplierName: "Fresh Farms", Products: []entity.Product{
				product("p2", "Onion", 20, 30, supplierID),
				product("px", "Ajeno", 1, 1, "otro"),
				product("p1", "Potato", 10, 25, supplierID),
			}}, nil
		},
	}
	m := catalog.NewManager(api, logger.Nop())

	got, err := m.List(context.Background(), supplierID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p2", got[0].ID, "se respeta el orden del servicio")
	assert.Equal(t, "p1", got[1].ID)
	assert.Equal(t, got, m.Products())
	assert.Equal(t, supplierID, api.Calls()[0].ID, "el listado se pide ya acotado al proveedor")
}

func TestList_VacioNoEsError(t *testing.T) {
	m := catalog.NewManager(&portstest.FakeMarketplace{}, logger.Nop())
	got, err := m.List(context.Background(), supplierID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreate_ValidaAntesDeLlamar(t *testing.T) {
	cases := []catalog.ProductFields{
		{Name: "", Quantity: "10", Price: "20"},
		{Name: "Rice", Quantity: "0", Price: "20"},
		{Name: "Rice", Quantity: "10", Price: "-1"},
		{Name: "Rice", Quantity: "diez", Price: "20"},
	}
	for _, fields := range cases {
		api := &portstest.FakeMarketplace{}
		m := catalog.NewManager(api, logger.Nop())
		_, err := m.Create(context.Background(), fields, supplierID)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", fields)
		assert.Zero(t, api.CallCount(), "no debe haber llamada remota para %+v", fields)
	}
}

func TestCreate_AgregaAlEstadoLocal(t *testing.T) {
	api := &portstest.FakeMarketplace{
		CreateProductFn: func(in dto.CreateProductRequest) (*entity.Product, error) {
			return &entity.Product{ID: "p9", Name: in.Name, Quantity: in.Quantity, Price: in.Price, SupplierID: in.SupplierID}, nil
		},
	}
	m := catalog.NewManager(api, logger.Nop())

	p, err := m.Create(context.Background(), catalog.ProductFields{Name: " Rice ", Quantity: "12.5", Price: "40"}, supplierID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", p.Name)

	req := api.Calls()[0].Body.(dto.CreateProductRequest)
	assert.True(t, decimal.RequireFromString("12.5").Equal(req.Quantity))
	assert.Equal(t, supplierID, req.SupplierID)
	assert.Equal(t, []entity.Product{*p}, m.Products())
}

func TestUpdate_NombreInmutable(t *testing.T) {
	api := &portstest.FakeMarketplace{
		SupplierProductsFn: func(string) (*entity.SupplierStorefront, error) {
			return &entity.SupplierStorefront{Products: []entity.Product{product("p1", "Potato", 10, 25, supplierID)}}, nil
		},
	}
	m := catalog.NewManager(api, logger.Nop())
	_, err := m.List(context.Background(), supplierID)
	require.NoError(t, err)

	_, err = m.Update(context.Background(), "p1", catalog.ProductFields{Name: "Tomato", Quantity: "5", Price: "10"})
	var fe domain.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, catalog.MsgNameImmutable, fe[domain.FieldName])
	assert.Equal(t, 1, api.CallCount(), "solo el listado, ningún PUT")

	// el mismo nombre (campo deshabilitado del formulario) sí se acepta
	_, err = m.Update(context.Background(), "p1", catalog.ProductFields{Name: "Potato", Quantity: "5", Price: "10"})
	require.NoError(t, err)
	body := api.Calls()[1].Body.(dto.UpdateProductRequest)
	assert.True(t, decimal.NewFromInt(5).Equal(body.Quantity))
}

func TestUpdate_ErrorDePropiedad(t *testing.T) {
	api := &portstest.FakeMarketplace{
		UpdateProductFn: func(string, dto.UpdateProductRequest) (*entity.Product, error) {
			return nil, &domain.RemoteError{Status: 403, Detail: "Not your product"}
		},
	}
	m := catalog.NewManager(api, logger.Nop())
	_, err := m.Update(context.Background(), "p1", catalog.ProductFields{Quantity: "5", Price: "10"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Not your product", domain.UserMessage(err, "x"))
}

func TestDelete_SoloTrasConfirmacionRemota(t *testing.T) {
	fail := true
	api := &portstest.FakeMarketplace{
		SupplierProductsFn: func(string) (*entity.SupplierStorefront, error) {
			return &entity.SupplierStorefront{Products: []entity.Product{
				product("p1", "Potato", 10, 25, supplierID),
				product("p2", "Onion", 10, 25, supplierID),
			}}, nil
		},
		DeleteProductFn: func(string) error {
			if fail {
				return &domain.TransportError{Op: "DELETE /products/p1", Err: errors.New("connection reset")}
			}
			return nil
		},
	}
	m := catalog.NewManager(api, logger.Nop())
	_, err := m.List(context.Background(), supplierID)
	require.NoError(t, err)

	err = m.Delete(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Len(t, m.Products(), 2, "estado intacto si falla")

	fail = false
	require.NoError(t, m.Delete(context.Background(), "p1"))
	require.Len(t, m.Products(), 1)
	assert.Equal(t, "p2", m.Products()[0].ID)
}
