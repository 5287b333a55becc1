// internal/handlers/label_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maraval/boutique-be/internal/core/domain"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/internal/handlers"
	"github.com/maraval/boutique-be/test/helpers"
	"github.com/maraval/boutique-be/test/mocks"
)

func newLabelHandler(t *testing.T) (*handlers.LabelHandler, *mocks.MockLabelService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLabelService(ctrl)
	return handlers.NewLabelHandler(mockService, helpers.TestLogger()), mockService
}

func TestLabelHandler_EnqueuePrint(t *testing.T) {
	userID := uuid.New()
	labels := []ports.LabelRequest{
		{ProductID: uuid.New(), SizeID: uuid.New(), Count: 3},
		{ProductID: uuid.New(), SizeID: uuid.New(), Count: 2},
	}

	tests := []struct {
		name           string
		userID         string
		labels         []ports.LabelRequest
		setupMocks     func(*mocks.MockLabelService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:   "queues_job_and_returns_accepted",
			userID: userID.String(),
			labels: labels,
			setupMocks: func(m *mocks.MockLabelService) {
				m.EXPECT().
					EnqueuePrint(gomock.Any(), userID, labels).
					Return(&domain.PrintJob{
						ID:          uuid.New(),
						RequestedBy: userID,
						LabelCount:  5,
						StartCell:   12,
						Status:      domain.PrintJobQueued,
					}, nil)
			},
			expectedStatus: http.StatusAccepted,
			validateBody: func(t *testing.T, body []byte) {
				var job domain.PrintJob
				require.NoError(t, json.Unmarshal(body, &job))
				assert.Equal(t, domain.PrintJobQueued, job.Status)
				assert.Equal(t, 5, job.LabelCount)
				assert.Equal(t, 12, job.StartCell)
			},
		},
		{
			name:           "missing_user_header",
			userID:         "",
			labels:         labels,
			setupMocks:     func(m *mocks.MockLabelService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody:   func(t *testing.T, body []byte) {},
		},
		{
			name:           "empty_label_list",
			userID:         userID.String(),
			labels:         nil,
			setupMocks:     func(m *mocks.MockLabelService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "labels is required", response["error"])
			},
		},
		{
			name:   "service_error",
			userID: userID.String(),
			labels: labels,
			setupMocks: func(m *mocks.MockLabelService) {
				m.EXPECT().
					EnqueuePrint(gomock.Any(), userID, labels).
					Return(nil, errors.New("queue unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody:   func(t *testing.T, body []byte) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newLabelHandler(t)
			tt.setupMocks(mockService)

			payload, err := json.Marshal(handlers.PrintRequest{Labels: tt.labels})
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/v1/labels/print", bytes.NewReader(payload))
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			w := httptest.NewRecorder()

			handler.EnqueuePrint(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateBody(t, w.Body.Bytes())
		})
	}
}

func TestLabelHandler_GetJob(t *testing.T) {
	jobID := uuid.New()

	tests := []struct {
		name           string
		jobID          string
		setupMocks     func(*mocks.MockLabelService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:  "returns_rendered_job",
			jobID: jobID.String(),
			setupMocks: func(m *mocks.MockLabelService) {
				m.EXPECT().
					GetJob(gomock.Any(), jobID).
					Return(&domain.PrintJob{
						ID:          jobID,
						Status:      domain.PrintJobRendered,
						ArtifactKey: "labels/" + jobID.String() + ".png",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var job domain.PrintJob
				require.NoError(t, json.Unmarshal(body, &job))
				assert.Equal(t, domain.PrintJobRendered, job.Status)
				assert.NotEmpty(t, job.ArtifactKey)
			},
		},
		{
			name:           "invalid_uuid_format",
			jobID:          "not-a-uuid",
			setupMocks:     func(m *mocks.MockLabelService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody:   func(t *testing.T, body []byte) {},
		},
		{
			name:  "job_not_found",
			jobID: jobID.String(),
			setupMocks: func(m *mocks.MockLabelService) {
				m.EXPECT().
					GetJob(gomock.Any(), jobID).
					Return(nil, errors.New("print job not found"))
			},
			expectedStatus: http.StatusNotFound,
			validateBody:   func(t *testing.T, body []byte) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newLabelHandler(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/labels/jobs/"+tt.jobID, nil)
			req.SetPathValue("id", tt.jobID)
			w := httptest.NewRecorder()

			handler.GetJob(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateBody(t, w.Body.Bytes())
		})
	}
}

func TestLabelHandler_State(t *testing.T) {
	handler, mockService := newLabelHandler(t)
	mockService.EXPECT().
		State(gomock.Any()).
		Return(&domain.LabelPrintState{LastPosition: 41}, nil)

	req := httptest.NewRequest("GET", "/api/v1/labels/state", nil)
	w := httptest.NewRecorder()

	handler.State(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var state domain.LabelPrintState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, 41, state.LastPosition)
}
