// internal/core/services/label_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/internal/core/services"
	"github.com/maraval/boutique-be/test/helpers"
	"github.com/maraval/boutique-be/test/mocks"
)

type labelMocks struct {
	labels  *mocks.MockLabelStateRepository
	catalog *mocks.MockCatalogRepository
	db      *mocks.MockDatabase
}

func newLabelService(t *testing.T) (*services.LabelService, *labelMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &labelMocks{
		labels:  mocks.NewMockLabelStateRepository(ctrl),
		catalog: mocks.NewMockCatalogRepository(ctrl),
		db:      mocks.NewMockDatabase(ctrl),
	}

	testRedis := helpers.SetupTestRedis(t)
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: testRedis.Server.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := services.NewLabelService(m.labels, m.catalog, m.db, client, helpers.TestLogger())
	return svc, m
}

func TestLabelService_EnqueuePrint(t *testing.T) {
	product := helpers.CreateTestProduct()
	sizeID := product.SizeIDs[0]
	size := &domain.Size{ID: sizeID, Name: "38"}
	userID := uuid.New()

	t.Run("allocates_cells_and_saves_job_in_one_transaction", func(t *testing.T) {
		svc, m := newLabelService(t)

		m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(product, nil)
		m.catalog.EXPECT().FindSizeByID(gomock.Any(), sizeID).Return(size, nil)
		m.db.EXPECT().Transaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(pgx.Tx) error) error {
				return fn(nil)
			})
		gomock.InOrder(
			m.labels.EXPECT().AllocateTx(gomock.Any(), gomock.Any(), 3).Return(12, nil),
			m.labels.EXPECT().SavePrintJobTx(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgx.Tx, job *domain.PrintJob) error {
					assert.Equal(t, 12, job.StartCell)
					assert.Equal(t, 3, job.LabelCount)
					assert.Equal(t, domain.PrintJobQueued, job.Status)
					assert.Equal(t, userID, job.RequestedBy)
					return nil
				}),
		)

		job, err := svc.EnqueuePrint(context.Background(), userID, []ports.LabelRequest{
			{ProductID: product.ID, SizeID: sizeID, Count: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, 12, job.StartCell)
		assert.Equal(t, 3, job.LabelCount)
	})

	t.Run("failed_job_insert_aborts_the_allocation", func(t *testing.T) {
		svc, m := newLabelService(t)

		m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(product, nil)
		m.catalog.EXPECT().FindSizeByID(gomock.Any(), sizeID).Return(size, nil)
		m.db.EXPECT().Transaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(pgx.Tx) error) error {
				return fn(nil)
			})
		m.labels.EXPECT().AllocateTx(gomock.Any(), gomock.Any(), 2).Return(50, nil)
		m.labels.EXPECT().SavePrintJobTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		_, err := svc.EnqueuePrint(context.Background(), userID, []ports.LabelRequest{
			{ProductID: product.ID, SizeID: sizeID, Count: 2},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save print job")
	})

	t.Run("rejects_non_positive_count", func(t *testing.T) {
		svc, _ := newLabelService(t)

		_, err := svc.EnqueuePrint(context.Background(), userID, []ports.LabelRequest{
			{ProductID: product.ID, SizeID: sizeID, Count: 0},
		})
		require.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
	})

	t.Run("rejects_unknown_product", func(t *testing.T) {
		svc, m := newLabelService(t)

		m.catalog.EXPECT().FindProductByID(gomock.Any(), product.ID).Return(nil, nil)
		m.catalog.EXPECT().FindSizeByID(gomock.Any(), sizeID).Return(size, nil)

		_, err := svc.EnqueuePrint(context.Background(), userID, []ports.LabelRequest{
			{ProductID: product.ID, SizeID: sizeID, Count: 1},
		})
		require.ErrorIs(t, err, domain.ErrMissingProductOrSize)
	})
}
