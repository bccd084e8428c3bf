package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

func TestProductRepository_SaveWithCategories(t *testing.T) {
	repo := NewProductRepository(setupSQLiteDB(t))
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.Product{
		Description:   "My Product",
		ProductStatus: domain.ProductStatusNew,
		Categories:    []*domain.Category{{Description: "CAT1"}, {Description: "CAT2"}},
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.CreatedDate.IsZero())
	assert.False(t, saved.LastModifiedDate.IsZero())
	require.Len(t, saved.Categories, 2)

	saved.ProductStatus = domain.ProductStatusInStock
	saved.Categories = saved.Categories[:1]
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusInStock, updated.ProductStatus)
	assert.True(t, updated.CreatedDate.Equal(saved.CreatedDate))
	assert.False(t, updated.LastModifiedDate.Before(saved.LastModifiedDate))
	require.Len(t, updated.Categories, 1)
	assert.Equal(t, "CAT1", updated.Categories[0].Description)

	byDescription, err := repo.GetByDescription(ctx, "My Product")
	require.NoError(t, err)
	assert.True(t, updated.Equal(byDescription))
}

func TestProductRepository_NotFound(t *testing.T) {
	repo := NewProductRepository(setupSQLiteDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 404)
	require.ErrorIs(t, err, ports.ErrNotFound)
	_, err = repo.GetByDescription(ctx, "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, 404), ports.ErrNotFound)
}

func TestProductRepository_UpdateMissingDoesNotInsert(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, &domain.Product{
		BaseEntity:    domain.BaseEntity{ID: 777},
		Description:   "ghost",
		ProductStatus: domain.ProductStatusNew,
	})
	require.ErrorIs(t, err, ports.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&productRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProductRepository_ListPages(t *testing.T) {
	repo := NewProductRepository(setupSQLiteDB(t))
	ctx := context.Background()
	for _, description := range []string{"c", "a", "b"} {
		_, err := repo.Save(ctx, &domain.Product{Description: description, ProductStatus: domain.ProductStatusNew})
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, paging.Of(0, 2, paging.Order{Property: "description", Direction: paging.Desc}))
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "c", page.Content[0].Description)
	assert.Equal(t, "b", page.Content[1].Description)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)

	page, err = repo.List(ctx, paging.Of(1, 2))
	require.NoError(t, err)
	require.Len(t, page.Content, 1)

	_, err = repo.List(ctx, paging.Of(0, 2, paging.Order{Property: "price"}))
	require.ErrorIs(t, err, paging.ErrUnknownSortProperty)
}

func TestProductRepository_Delete(t *testing.T) {
	repo := NewProductRepository(setupSQLiteDB(t))
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.Product{Description: "gone", ProductStatus: domain.ProductStatusNew})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, saved.ID))

	_, err = repo.GetByID(ctx, saved.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func newMockProductRepository(t *testing.T) (*ProductRepository, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	dialector := gormpostgres.New(gormpostgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return NewProductRepository(db), mock
}

func TestProductRepository_SQL(t *testing.T) {
	t.Run("missing row maps to not found", func(t *testing.T) {
		repo, mock := newMockProductRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "product" WHERE id = \$1 ORDER BY "product"."id" LIMIT \$2`).
			WithArgs(int64(7), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "description", "product_status"}))

		_, err := repo.GetByID(context.Background(), 7)
		require.ErrorIs(t, err, ports.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lookup by description", func(t *testing.T) {
		repo, mock := newMockProductRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "product" WHERE description = \$1 ORDER BY "product"."id" LIMIT \$2`).
			WithArgs("widget", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "description", "product_status"}))

		_, err := repo.GetByDescription(context.Background(), "widget")
		require.ErrorIs(t, err, ports.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete without affected rows", func(t *testing.T) {
		repo, mock := newMockProductRepository(t)

		mock.ExpectExec(`DELETE FROM "product" WHERE "product"."id" = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.Delete(context.Background(), 7), ports.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete of a product on an order line is refused", func(t *testing.T) {
		repo, mock := newMockProductRepository(t)

		mock.ExpectExec(`DELETE FROM "product" WHERE "product"."id" = \$1`).
			WithArgs(int64(7)).
			WillReturnError(&pq.Error{Code: "23503", Constraint: "order_line_product_id_fkey"})

		err := repo.Delete(context.Background(), 7)
		require.ErrorIs(t, err, ports.ErrReferenced)
		require.Contains(t, err.Error(), "order_line_product_id_fkey")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update without affected rows rolls back", func(t *testing.T) {
		repo, mock := newMockProductRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "product" SET .* WHERE id = \$4`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.Save(context.Background(), &domain.Product{
			BaseEntity:    domain.BaseEntity{ID: 7},
			Description:   "widget",
			ProductStatus: domain.ProductStatusNew,
		})
		require.ErrorIs(t, err, ports.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
