package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/application"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/ports"
)

func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&termRecord{}, &termMetaRecord{}))
	return db
}

func TestTermMetaDAO_SQLite(t *testing.T) {
	db := setupSQLiteDB(t)
	dao := application.NewTermMetaDAO(NewTermRepository(db), NewTermMetaRepository(db))
	ctx := context.Background()

	term, err := dao.SaveTerm(ctx, &domain.Term{Name: "Uncategorized"})
	require.NoError(t, err)
	assert.Equal(t, "uncategorized", term.Slug)

	first, err := dao.Save(ctx, &domain.TermMeta{Term: term, Meta: domain.Meta{MetaKey: "color", MetaValue: "red"}})
	require.NoError(t, err)
	require.NotNil(t, first.Term)
	assert.Equal(t, "Uncategorized", first.Term.Name)
	_, err = dao.Save(ctx, &domain.TermMeta{Term: term, Meta: domain.Meta{MetaKey: "order", MetaValue: "3"}})
	require.NoError(t, err)

	first.MetaValue = "blue"
	updated, err := dao.Save(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "blue", updated.MetaValue)

	metas, err := dao.FindByTerm(ctx, term.ID)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "color", metas[0].MetaKey)
	assert.Equal(t, "order", metas[1].MetaKey)

	_, err = dao.FindByTerm(ctx, term.ID+100)
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, dao.DeleteByID(ctx, first.ID))
	_, err = dao.GetByID(ctx, first.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
	require.ErrorIs(t, dao.DeleteByID(ctx, first.ID), ports.ErrNotFound)

	_, err = dao.Save(ctx, &domain.TermMeta{Meta: domain.Meta{MetaKey: "orphan"}})
	require.ErrorIs(t, err, application.ErrInvalidInput)
}

func TestTermRepository_UpdateMissing(t *testing.T) {
	repo := NewTermRepository(setupSQLiteDB(t))
	_, err := repo.Save(context.Background(), &domain.Term{ID: 5, Name: "ghost"})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepositories_SQL(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: mockDB, DriverName: "postgres"}),
		&gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "wp_terms" WHERE term_id = \$1 ORDER BY "wp_terms"."term_id" LIMIT \$2`).
		WithArgs(int64(3), 1).
		WillReturnRows(sqlmock.NewRows([]string{"term_id", "name", "slug", "term_group"}).AddRow(3, "News", "news", 0))
	term, err := NewTermRepository(db).GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "news", term.Slug)

	mock.ExpectExec(`DELETE FROM "wp_termmeta" WHERE "wp_termmeta"."meta_id" = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, NewTermMetaRepository(db).Delete(context.Background(), 9), ports.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
