package discovery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bulkbuy/internal/application/discovery"
	"github.com/jhoicas/bulkbuy/internal/application/ports/portstest"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

func newService(api *portstest.FakeMarketplace) *discovery.Service {
	return discovery.NewService(api, api, logger.Nop())
}

func TestSearch_SinCoincidenciasNoEsError(t *testing.T) {
	api := &portstest.FakeMarketplace{}
	res, err := newService(api).SearchByPincode(context.Background(), " 560001 ")
	require.NoError(t, err)
	assert.True(t, res.NotFound)
	assert.Equal(t, discovery.MsgNotFound, res.Message)
	assert.Equal(t, "560001", api.Calls()[0].ID, "el pincode viaja recortado")
}

func TestSearch_ConResultados(t *testing.T) {
	api := &portstest.FakeMarketplace{
		SearchSuppliersFn: func(string) ([]entity.Supplier, error) {
			return []entity.Supplier{{ID: "s1", Name: "Fresh Farms"}}, nil
		},
	}
	res, err := newService(api).SearchByPincode(context.Background(), "560001")
	require.NoError(t, err)
	assert.False(t, res.NotFound)
	assert.Empty(t, res.Message)
	assert.Len(t, res.Suppliers, 1)
}

func TestSearch_FalloEsSenalDistinta(t *testing.T) {
	api := &portstest.FakeMarketplace{
		SearchSuppliersFn: func(string) ([]entity.Supplier, error) {
			return nil, &domain.TransportError{Op: "GET /suppliers", Err: errors.New("dial tcp: refused")}
		},
	}
	res, err := newService(api).SearchByPincode(context.Background(), "560001")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, discovery.MsgSearchFailed, discovery.SearchFailureMessage(err))
}

func TestSearch_PincodeVacio(t *testing.T) {
	api := &portstest.FakeMarketplace{}
	_, err := newService(api).SearchByPincode(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "pincode: "+discovery.MsgPincode, discovery.SearchFailureMessage(err))
	assert.Zero(t, api.CallCount())
}

func TestSupplierProductsYDashboard(t *testing.T) {
	api := &portstest.FakeMarketplace{
		SupplierProductsFn: func(id string) (*entity.SupplierStorefront, error) {
			return &entity.SupplierStorefront{SupplierName: "Fresh Farms"}, nil
		},
		VendorDashboardFn: func() (*entity.VendorDashboard, error) {
			return &entity.VendorDashboard{VendorName: "Ravi"}, nil
		},
	}
	svc := newService(api)
	store, err := svc.SupplierProducts(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Fresh Farms", store.SupplierName)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ravi", d.VendorName)
}
