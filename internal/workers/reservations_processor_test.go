// internal/workers/reservations_processor_test.go
package workers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maraval/boutique-be/internal/workers"
	"github.com/maraval/boutique-be/test/helpers"
	"github.com/maraval/boutique-be/test/mocks"
)

func TestReservationSweepProcessor_ProcessReservationSweep(t *testing.T) {
	t.Run("expires_due_reservations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		workflow := mocks.NewMockWorkflowService(ctrl)
		p := workers.NewReservationSweepProcessor(workflow, helpers.TestLogger())

		workflow.EXPECT().ExpireDueReservations(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, now time.Time) (int, error) {
				assert.WithinDuration(t, time.Now(), now, time.Minute)
				return 3, nil
			})

		task := asynq.NewTask(workers.TypeReservationSweep, nil)
		require.NoError(t, p.ProcessReservationSweep(context.Background(), task))
	})

	t.Run("propagates_sweep_failure_for_retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		workflow := mocks.NewMockWorkflowService(ctrl)
		p := workers.NewReservationSweepProcessor(workflow, helpers.TestLogger())

		workflow.EXPECT().ExpireDueReservations(gomock.Any(), gomock.Any()).
			Return(0, errors.New("deadlock detected"))

		task := asynq.NewTask(workers.TypeReservationSweep, nil)
		err := p.ProcessReservationSweep(context.Background(), task)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deadlock detected")
	})
}
