package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

func TestOrderHeaderRepository_SaveLinksCustomerAndProducts(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	product, err := store.Products().Save(ctx, &domain.Product{Description: "widget", ProductStatus: domain.ProductStatusNew})
	require.NoError(t, err)
	customer, err := store.Customers().Save(ctx, &domain.Customer{CustomerName: "Acme"})
	require.NoError(t, err)

	header := &domain.OrderHeader{OrderStatus: domain.OrderStatusNew}
	header.SetCustomer(customer)
	header.AddOrderLine(&domain.OrderLine{QuantityOrdered: 2, Product: product})

	saved, err := store.OrderHeaders().Save(ctx, header)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.NotZero(t, saved.OrderLines[0].ID)
	require.False(t, saved.CreatedDate.IsZero())
	require.Equal(t, "widget", saved.OrderLines[0].Product.Description)

	fetchedCustomer, err := store.Customers().GetByID(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, fetchedCustomer.OrderHeaders, 1)
	require.Same(t, fetchedCustomer, fetchedCustomer.OrderHeaders[0].Customer)

	byCustomer, err := store.OrderHeaders().GetByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.True(t, saved.Equal(byCustomer))
}

func TestOrderHeaderRepository_VersionCheck(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().OrderHeaders()

	saved, err := repo.Save(ctx, &domain.OrderHeader{OrderStatus: domain.OrderStatusNew})
	require.NoError(t, err)
	require.Equal(t, 0, saved.Version)

	first := saved.Clone()
	first.OrderStatus = domain.OrderStatusComplete
	updated, err := repo.Save(ctx, first)
	require.NoError(t, err)
	require.Equal(t, 1, updated.Version)

	_, err = repo.Save(ctx, saved)
	require.ErrorIs(t, err, ports.ErrStaleVersion)

	missing := &domain.OrderHeader{BaseEntity: domain.BaseEntity{ID: 99}}
	_, err = repo.Save(ctx, missing)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestOrderHeaderRepository_LinesStayWithTheirOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().OrderHeaders()

	first := &domain.OrderHeader{OrderStatus: domain.OrderStatusNew}
	first.AddOrderLine(&domain.OrderLine{QuantityOrdered: 5})
	first, err := repo.Save(ctx, first)
	require.NoError(t, err)
	second, err := repo.Save(ctx, &domain.OrderHeader{OrderStatus: domain.OrderStatusNew})
	require.NoError(t, err)

	second.AddOrderLine(&domain.OrderLine{BaseEntity: domain.BaseEntity{ID: first.OrderLines[0].ID}, QuantityOrdered: 9})
	_, err = repo.Save(ctx, second)
	require.ErrorIs(t, err, ports.ErrNotFound)

	reloaded, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.OrderLines, 1)
	require.Equal(t, int32(5), reloaded.OrderLines[0].QuantityOrdered)

	created := reloaded.OrderLines[0].CreatedDate
	reloaded.OrderLines[0].CreatedDate = time.Time{}
	reloaded.OrderLines[0].QuantityOrdered = 6
	updated, err := repo.Save(ctx, reloaded)
	require.NoError(t, err)
	require.Equal(t, int32(6), updated.OrderLines[0].QuantityOrdered)
	require.True(t, updated.OrderLines[0].CreatedDate.Equal(created))
}

func TestProductRepository_ListSortsAndPages(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Products()
	for _, description := range []string{"b", "c", "a"} {
		_, err := repo.Save(ctx, &domain.Product{Description: description, ProductStatus: domain.ProductStatusNew})
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, paging.Of(0, 2, paging.Order{Property: "description"}))
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	require.Equal(t, "a", page.Content[0].Description)
	require.Equal(t, int64(3), page.TotalElements)
	require.Equal(t, 2, page.TotalPages)

	_, err = repo.List(ctx, paging.Of(0, 2, paging.Order{Property: "price"}))
	require.ErrorIs(t, err, paging.ErrUnknownSortProperty)
}

func TestCustomerRepository_DeleteDetachesOrders(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	customer, err := store.Customers().Save(ctx, &domain.Customer{CustomerName: "Acme"})
	require.NoError(t, err)
	header := &domain.OrderHeader{}
	header.SetCustomer(customer)
	saved, err := store.OrderHeaders().Save(ctx, header)
	require.NoError(t, err)

	require.NoError(t, store.Customers().Delete(ctx, customer.ID))
	require.ErrorIs(t, store.Customers().Delete(ctx, customer.ID), ports.ErrNotFound)

	fetched, err := store.OrderHeaders().GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.Nil(t, fetched.Customer)
}

func TestStore_UpdateMissingRows(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Products().Save(ctx, &domain.Product{BaseEntity: domain.BaseEntity{ID: 777}, Description: "ghost"})
	require.ErrorIs(t, err, ports.ErrNotFound)
	_, err = store.Customers().Save(ctx, &domain.Customer{BaseEntity: domain.BaseEntity{ID: 888}, CustomerName: "Nobody"})
	require.ErrorIs(t, err, ports.ErrNotFound)

	_, err = store.Products().GetByID(ctx, 777)
	require.ErrorIs(t, err, ports.ErrNotFound)
	_, err = store.Customers().GetByID(ctx, 888)
	require.ErrorIs(t, err, ports.ErrNotFound)

	created, err := store.Products().Save(ctx, &domain.Product{Description: "real"})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
}

func TestProductRepository_DeleteReferencedByOrderLine(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	product, err := store.Products().Save(ctx, &domain.Product{Description: "widget"})
	require.NoError(t, err)
	header := &domain.OrderHeader{}
	header.AddOrderLine(&domain.OrderLine{QuantityOrdered: 1, Product: product})
	_, err = store.OrderHeaders().Save(ctx, header)
	require.NoError(t, err)

	require.ErrorIs(t, store.Products().Delete(ctx, product.ID), ports.ErrReferenced)
	_, err = store.Products().GetByID(ctx, product.ID)
	require.NoError(t, err)
}
