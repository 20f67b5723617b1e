package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestSwitchActiveCommits(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFeedRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "feed_schedules" SET "in_used"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "feed_schedules" SET "in_used"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SwitchActive(context.Background(), "c-1", "fs-2"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwitchActiveRollsBackUnknownSchedule(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFeedRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "feed_schedules" SET "in_used"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "feed_schedules" SET "in_used"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.SwitchActive(context.Background(), "c-1", "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorySoftDeleteCascades(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCategoryRepository(db)

	at := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	// deleted_at, is_deleted and the automatic updated_at come first.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "categories" SET .* WHERE id = \$4`).
		WithArgs(at, true, sqlmock.AnyArg(), "cat-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "sub_categories" SET .* WHERE category_id = \$4 AND is_deleted = \$5`).
		WithArgs(at, true, sqlmock.AnyArg(), "cat-1", false).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "products" SET .* WHERE category_id = \$4 AND is_deleted = \$5`).
		WithArgs(at, true, sqlmock.AnyArg(), "cat-1", false).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectCommit()

	category := models.Category{ID: "cat-1", Kind: models.CategoryProduct}
	require.NoError(t, repo.SoftDelete(context.Background(), category, at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorySoftDeleteRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "categories" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "sub_categories" SET`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	category := models.Category{ID: "cat-1", Kind: models.CategoryMusic}
	err := repo.SoftDelete(context.Background(), category, time.Now())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationRemoveCascades(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRelationRepository(db)
	at := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "carts" SET .* WHERE relative_id = \$4`).
		WithArgs(at, true, sqlmock.AnyArg(), "r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "orders" SET .* WHERE relative_id = \$4`).
		WithArgs(at, true, sqlmock.AnyArg(), "r-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "purchased_music" SET .* WHERE relative_id = \$3`).
		WithArgs(at, true, "r-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "product_favorites" WHERE relative_id = \$1`).
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "music_favorites" WHERE relative_id = \$1`).
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "messages" WHERE relative_id = \$1`).
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM "otps" WHERE role = \$1 AND account_id = \$2`).
		WithArgs(string(models.RoleRelative), "r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "child_relations" SET .* WHERE id = \$4 AND is_deleted = \$5`).
		WithArgs(at, true, sqlmock.AnyArg(), "r-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Remove(context.Background(), "r-1", at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationRemoveUnknownRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRelationRepository(db)

	mock.ExpectBegin()
	for _, table := range []string{"carts", "orders", "purchased_music"} {
		mock.ExpectExec(`UPDATE "` + table + `" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, table := range []string{"product_favorites", "music_favorites", "messages", "otps"} {
		mock.ExpectExec(`DELETE FROM "` + table + `"`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(`UPDATE "child_relations" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Remove(context.Background(), "r-9", time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateClearsCart(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	owner := models.ParentOwner("p-1")
	order := &models.Order{
		TrackingNumber: "ORD-1234560001",
		OwnerRefs:      models.NewOwnerRefs(owner),
		TotalPrice:     25,
		OrderStatus:    models.OrderPending,
		PaymentStatus:  models.PaymentPending,
		OrderItems: []models.OrderItem{
			{ProductID: "prod-1", Quantity: 1, Price: 10},
			{ProductID: "prod-2", Quantity: 1, Price: 15},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_items"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id IN \(SELECT id FROM "carts" WHERE parent_id = \$1 AND is_deleted = \$2\)`).
		WithArgs("p-1", false).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), order))
	require.NotEmpty(t, order.ID)
	for _, item := range order.OrderItems {
		assert.Equal(t, order.ID, item.OrderID)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateRollsBackOnItemFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	order := &models.Order{
		OwnerRefs:  models.NewOwnerRefs(models.RelativeOwner("r-1")),
		OrderItems: []models.OrderItem{{ProductID: "prod-1", Quantity: 1, Price: 10}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_items"`).WillReturnError(errors.New("foreign key violation"))
	mock.ExpectRollback()

	require.Error(t, repo.Create(context.Background(), order))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateForParentLocksParent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewChildRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "parents" WHERE .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p-1"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "parent_children" JOIN children .* WHERE parent_children.parent_id = \$1 AND children.is_deleted = \$2`).
		WithArgs("p-1", false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO "children"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "parent_children"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	child := &models.Child{Name: "Mia"}
	require.NoError(t, repo.CreateForParent(context.Background(), child, "p-1", nil))
	assert.NotEmpty(t, child.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateForParentRejectsSecondChild(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewChildRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "parents" WHERE .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p-1"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "parent_children"`).
		WithArgs("p-1", false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.CreateForParent(context.Background(), &models.Child{Name: "Leo"}, "p-1", nil)
	assert.ErrorIs(t, err, repositories.ErrChildLimit)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddParentRejectsThirdParent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewChildRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "children" WHERE .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c-1"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "parent_children" WHERE child_id = \$1`).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := repo.AddParent(context.Background(), "c-1", &models.Parent{Email: "ben@example.com"})
	assert.ErrorIs(t, err, repositories.ErrParentLimit)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSupplierCascadesToProducts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVendorRepository(db)
	at := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "suppliers" SET .* WHERE id = \$4 AND is_deleted = \$5`).
		WithArgs(at, true, sqlmock.AnyArg(), "s-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "products" SET .* WHERE supplier_id = \$4 AND is_deleted = \$5`).
		WithArgs(at, true, sqlmock.AnyArg(), "s-1", false).
		WillReturnResult(sqlmock.NewResult(0, 6))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteSupplier(context.Background(), "s-1", at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArtistUnknownLeavesMusic(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVendorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "artists" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteArtist(context.Background(), "a-9", time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMilestoneRemovesProgressFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMilestoneRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "child_milestone_progress\w*" WHERE sub_milestone_id IN \(SELECT id FROM "sub_milestones" WHERE milestone_id = \$1\)`).
		WithArgs("m-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "sub_milestones" WHERE milestone_id = \$1`).
		WithArgs("m-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "milestones" WHERE id = \$1`).
		WithArgs("m-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "m-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
