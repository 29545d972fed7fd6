package postgres

import (
	"testing"

	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{"id", "product_name", "cost", "amount_available", "seller_id"}

func TestProductsRepository_CreateProduct(t *testing.T) {
	t.Parallel()

	draft := domain.ProductDraft{Name: "cola", Cost: 15, AmountAvailable: 4}

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedProduct domain.Product
		expectedErr     error
	}

	testCases := []testCase{
		{
			name: "created",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO products").
					WithArgs("cola", uint32(15), uint32(4), 2).
					WillReturnRows(pgxmock.NewRows(productRowColumns).AddRow(7, "cola", uint32(15), uint32(4), 2))
			},
			expectedProduct: domain.Product{ID: 7, Name: "cola", Cost: 15, AmountAvailable: 4, SellerID: 2},
		},
		{
			name: "name taken",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO products").
					WithArgs("cola", uint32(15), uint32(4), 2).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: &domain.ConflictError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO products").
					WithArgs("cola", uint32(15), uint32(4), 2).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			product, err := NewProductsRepository(mock).CreateProduct(t.Context(), mock, 2, draft)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProduct, product)
			}
		})
	}
}

func TestProductsRepository_GetProductByID(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedProduct domain.Product
		expectedErr     error
	}

	testCases := []testCase{
		{
			name: "found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(7).
					WillReturnRows(pgxmock.NewRows(productRowColumns).AddRow(7, "cola", uint32(15), uint32(4), 2))
			},
			expectedProduct: domain.Product{ID: 7, Name: "cola", Cost: 15, AmountAvailable: 4, SellerID: 2},
		},
		{
			name: "not found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(7).
					WillReturnRows(pgxmock.NewRows(productRowColumns))
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(7).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			product, err := NewProductsRepository(mock).GetProductByID(t.Context(), 7)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProduct, product)
			}
		})
	}
}

func TestProductsRepository_TryGetProductByName(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery("SELECT").
		WithArgs("cola").
		WillReturnRows(pgxmock.NewRows(productRowColumns).AddRow(7, "cola", uint32(15), uint32(4), 2))
	mock.ExpectQuery("SELECT").
		WithArgs("water").
		WillReturnRows(pgxmock.NewRows(productRowColumns))

	repo := NewProductsRepository(mock)

	product, found, err := repo.TryGetProductByName(t.Context(), mock, "cola")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7, product.ID)

	_, found, err = repo.TryGetProductByName(t.Context(), mock, "water")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProductsRepository_ListProducts(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery("SELECT").WillReturnRows(pgxmock.NewRows(productRowColumns).
		AddRow(1, "cola", uint32(15), uint32(4), 2).
		AddRow(2, "chips", uint32(20), uint32(0), 3))

	products, err := NewProductsRepository(mock).ListProducts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{
		{ID: 1, Name: "cola", Cost: 15, AmountAvailable: 4, SellerID: 2},
		{ID: 2, Name: "chips", Cost: 20, AmountAvailable: 0, SellerID: 3},
	}, products)
}

func TestProductsRepository_ListProducts_Empty(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery("SELECT").WillReturnRows(pgxmock.NewRows(productRowColumns))

	products, err := NewProductsRepository(mock).ListProducts(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductsRepository_CountSellerProducts(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := NewProductsRepository(mock).CountSellerProducts(t.Context(), mock, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestProductsRepository_LockAndGetProduct(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery("FOR UPDATE").
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(productRowColumns).AddRow(7, "cola", uint32(15), uint32(1), 2))
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(8).
		WillReturnRows(pgxmock.NewRows(productRowColumns))

	repo := NewProductsRepository(mock)

	product, err := repo.LockAndGetProduct(t.Context(), mock, 7)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), product.AmountAvailable)

	_, err = repo.LockAndGetProduct(t.Context(), mock, 8)
	assert.ErrorIs(t, err, &domain.ProductNotFoundError{})
}

func TestProductsRepository_UpdateProduct(t *testing.T) {
	t.Parallel()

	product := domain.Product{ID: 7, Name: "pepsi", Cost: 20, AmountAvailable: 3, SellerID: 2}

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	testCases := []testCase{
		{
			name: "updated",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products").
					WithArgs("pepsi", uint32(20), uint32(3), 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "name taken",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products").
					WithArgs("pepsi", uint32(20), uint32(3), 7).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: &domain.ConflictError{},
		},
		{
			name: "missing",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products").
					WithArgs("pepsi", uint32(20), uint32(3), 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			err = NewProductsRepository(mock).UpdateProduct(t.Context(), mock, product)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductsRepository_DeleteProduct(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectExec("DELETE FROM products").
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM products").
		WithArgs(8).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM products").
		WithArgs(9).
		WillReturnError(assert.AnError)

	repo := NewProductsRepository(mock)

	assert.NoError(t, repo.DeleteProduct(t.Context(), 7))
	assert.ErrorIs(t, repo.DeleteProduct(t.Context(), 8), &domain.ProductNotFoundError{})
	assert.ErrorIs(t, repo.DeleteProduct(t.Context(), 9), assert.AnError)
}

func TestProductsRepository_DecrementStock(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectExec("UPDATE products SET amount_available").
		WithArgs(uint32(2), 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE products SET amount_available").
		WithArgs(uint32(5), 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewProductsRepository(mock)

	assert.NoError(t, repo.DecrementStock(t.Context(), mock, 7, 2))
	assert.ErrorIs(t, repo.DecrementStock(t.Context(), mock, 7, 5), &domain.InsufficientStockError{})
	assert.NoError(t, mock.ExpectationsWereMet())
}
