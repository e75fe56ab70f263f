package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/balasagoth/mi-supermercado/internal/order/domain"
)

func newMockRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
		// Needed so unique-constraint violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	require.NoError(t, err)

	return NewGormOrderRepository(db), mock
}

func productRow(id uint, priceCents int64, stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "price_cents", "stock", "available"}).
		AddRow(id, priceCents, stock, true)
}

const (
	lockProductSQL     = `SELECT \* FROM "products" WHERE "products"\."id" = \$1(.|\n)*FOR UPDATE`
	decrementStockSQL  = `UPDATE "products" SET "stock"=stock - \$1 WHERE id = \$2 AND stock >= \$3`
	insertOrderSQL     = `INSERT INTO "orders"`
	insertOrderLineSQL = `INSERT INTO "order_lines"`
)

func TestCreateForPayment_DecrementsStockAndCapturesPrices(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockProductSQL).WillReturnRows(productRow(1, 1000, 3))
	mock.ExpectExec(decrementStockSQL).
		WithArgs(2, 1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(lockProductSQL).WillReturnRows(productRow(2, 2000, 2))
	mock.ExpectExec(decrementStockSQL).
		WithArgs(1, 2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(insertOrderSQL).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(insertOrderLineSQL).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	order := &domain.Order{
		UserID:     7,
		Status:     domain.StatusPreparing,
		TotalCents: 4000,
		PaymentRef: "cs_123",
	}
	err := repo.CreateForPayment(context.Background(), order, []domain.NewLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, uint(1), order.ID)

	// Unit prices come from the locked rows, not from the caller
	require.Len(t, order.Lines, 2)
	assert.Equal(t, int64(1000), order.Lines[0].UnitPriceCents)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.Equal(t, int64(2000), order.Lines[1].UnitPriceCents)
	assert.Equal(t, 1, order.Lines[1].Quantity)
}

func TestCreateForPayment_InsufficientStockRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockProductSQL).WillReturnRows(productRow(1, 1000, 1))
	// The guard rejects the decrement: zero rows match stock >= 5
	mock.ExpectExec(decrementStockSQL).
		WithArgs(5, 1, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	order := &domain.Order{UserID: 7, PaymentRef: "cs_456"}
	err := repo.CreateForPayment(context.Background(), order, []domain.NewLine{
		{ProductID: 1, Quantity: 5},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateForPayment_VanishedProductRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)

	// The first line goes through, then the second product is gone and the
	// whole transaction rolls back without touching the orders tables.
	mock.ExpectBegin()
	mock.ExpectQuery(lockProductSQL).WillReturnRows(productRow(1, 1000, 3))
	mock.ExpectExec(decrementStockSQL).
		WithArgs(1, 1, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(lockProductSQL).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price_cents", "stock", "available"}))
	mock.ExpectRollback()

	order := &domain.Order{UserID: 7, PaymentRef: "cs_789"}
	err := repo.CreateForPayment(context.Background(), order, []domain.NewLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 99, Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateForPayment_DuplicatePaymentRefRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockProductSQL).WillReturnRows(productRow(1, 1000, 3))
	mock.ExpectExec(decrementStockSQL).
		WithArgs(1, 1, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(insertOrderSQL).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	order := &domain.Order{UserID: 7, PaymentRef: "cs_123"}
	err := repo.CreateForPayment(context.Background(), order, []domain.NewLine{
		{ProductID: 1, Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicatePaymentRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}
