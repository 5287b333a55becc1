// internal/handlers/workflow_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
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

func newWorkflowHandler(t *testing.T) (*handlers.WorkflowHandler, *mocks.MockWorkflowService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockWorkflowService(ctrl)
	return handlers.NewWorkflowHandler(mockService, helpers.TestLogger()), mockService
}

func TestWorkflowHandler_CreateReservation(t *testing.T) {
	userID := uuid.New()
	reservation := helpers.CreateTestReservation()

	tests := []struct {
		name           string
		userID         string
		body           handlers.CreateReservationRequest
		setupMocks     func(*mocks.MockWorkflowService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:   "creates_pending_reservation",
			userID: userID.String(),
			body: handlers.CreateReservationRequest{
				ProductID:          reservation.ProductID,
				SizeID:             reservation.SizeID,
				LocationID:         reservation.LocationID,
				RequestingLocation: reservation.RequestingLocation,
				Quantity:           1,
			},
			setupMocks: func(m *mocks.MockWorkflowService) {
				m.EXPECT().
					CreateReservation(gomock.Any(), gomock.AssignableToTypeOf(ports.CreateReservationParams{})).
					DoAndReturn(func(_ interface{}, params ports.CreateReservationParams) (*domain.Reservation, error) {
						assert.Equal(t, userID, params.CreatedBy)
						return reservation, nil
					})
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var created domain.Reservation
				require.NoError(t, json.Unmarshal(body, &created))
				assert.Equal(t, domain.ReservationPending, created.Status)
			},
		},
		{
			name:           "missing_user_header",
			userID:         "",
			body:           handlers.CreateReservationRequest{},
			setupMocks:     func(m *mocks.MockWorkflowService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody:   func(t *testing.T, body []byte) {},
		},
		{
			name:   "insufficient_stock_to_reserve",
			userID: userID.String(),
			body: handlers.CreateReservationRequest{
				ProductID:          reservation.ProductID,
				SizeID:             reservation.SizeID,
				LocationID:         reservation.LocationID,
				RequestingLocation: reservation.RequestingLocation,
				Quantity:           3,
			},
			setupMocks: func(m *mocks.MockWorkflowService) {
				m.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, &domain.ErrInsufficientStock{
						ProductID: reservation.ProductID,
						SizeID:    reservation.SizeID,
						Requested: 3,
						Available: 1,
					})
			},
			expectedStatus: http.StatusConflict,
			validateBody:   func(t *testing.T, body []byte) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newWorkflowHandler(t)
			tt.setupMocks(mockService)

			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/v1/reservations", bytes.NewReader(payload))
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			w := httptest.NewRecorder()

			handler.CreateReservation(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateBody(t, w.Body.Bytes())
		})
	}
}

func TestWorkflowHandler_ReservationTransitions(t *testing.T) {
	reservationID := uuid.New()
	actingLocation := uuid.New()

	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockWorkflowService)
		invoke         func(*handlers.WorkflowHandler, http.ResponseWriter, *http.Request)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "confirm_succeeds",
			setupMocks: func(m *mocks.MockWorkflowService) {
				m.EXPECT().
					ConfirmReservation(gomock.Any(), reservationID, actingLocation).
					Return(&ports.TransitionResult{}, nil)
			},
			invoke:         (*handlers.WorkflowHandler).ConfirmReservation,
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var result ports.TransitionResult
				require.NoError(t, json.Unmarshal(body, &result))
				assert.False(t, result.Informational)
			},
		},
		{
			name: "cancel_of_terminal_reservation_is_informational",
			setupMocks: func(m *mocks.MockWorkflowService) {
				m.EXPECT().
					CancelReservation(gomock.Any(), reservationID, actingLocation).
					Return(&ports.TransitionResult{
						Informational: true,
						Message:       "reservation already cancelled",
					}, nil)
			},
			invoke:         (*handlers.WorkflowHandler).CancelReservation,
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var result ports.TransitionResult
				require.NoError(t, json.Unmarshal(body, &result))
				assert.True(t, result.Informational)
			},
		},
		{
			name: "complete_from_wrong_location",
			setupMocks: func(m *mocks.MockWorkflowService) {
				m.EXPECT().
					CompleteReservation(gomock.Any(), reservationID, actingLocation).
					Return(nil, domain.ErrWrongLocation)
			},
			invoke:         (*handlers.WorkflowHandler).CompleteReservation,
			expectedStatus: http.StatusConflict,
			validateBody:   func(t *testing.T, body []byte) {},
		},
		{
			name: "confirm_of_missing_reservation",
			setupMocks: func(m *mocks.MockWorkflowService) {
				m.EXPECT().
					ConfirmReservation(gomock.Any(), reservationID, actingLocation).
					Return(nil, domain.ErrReservationNotFound)
			},
			invoke:         (*handlers.WorkflowHandler).ConfirmReservation,
			expectedStatus: http.StatusNotFound,
			validateBody:   func(t *testing.T, body []byte) {},
		},
		{
			name: "confirm_from_invalid_state",
			setupMocks: func(m *mocks.MockWorkflowService) {
				m.EXPECT().
					ConfirmReservation(gomock.Any(), reservationID, actingLocation).
					Return(nil, domain.ErrInvalidTransition)
			},
			invoke:         (*handlers.WorkflowHandler).ConfirmReservation,
			expectedStatus: http.StatusConflict,
			validateBody:   func(t *testing.T, body []byte) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newWorkflowHandler(t)
			tt.setupMocks(mockService)

			payload, err := json.Marshal(handlers.TransitionRequest{LocationID: actingLocation})
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/v1/reservations/"+reservationID.String()+"/confirm", bytes.NewReader(payload))
			req.SetPathValue("id", reservationID.String())
			w := httptest.NewRecorder()

			tt.invoke(handler, w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateBody(t, w.Body.Bytes())
		})
	}
}

func TestWorkflowHandler_PrepareTransfer(t *testing.T) {
	transferID := uuid.New()
	fromLocation := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		setupMocks     func(*mocks.MockWorkflowService)
		expectedStatus int
	}{
		{
			name:   "prepare_succeeds",
			userID: userID.String(),
			setupMocks: func(m *mocks.MockWorkflowService) {
				m.EXPECT().
					PrepareTransfer(gomock.Any(), transferID, fromLocation, userID).
					Return(&ports.TransitionResult{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing_user_header",
			userID:         "",
			setupMocks:     func(m *mocks.MockWorkflowService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "prepare_from_destination_location",
			userID: userID.String(),
			setupMocks: func(m *mocks.MockWorkflowService) {
				m.EXPECT().
					PrepareTransfer(gomock.Any(), transferID, fromLocation, userID).
					Return(nil, domain.ErrWrongLocation)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "transfer_not_found",
			userID: userID.String(),
			setupMocks: func(m *mocks.MockWorkflowService) {
				m.EXPECT().
					PrepareTransfer(gomock.Any(), transferID, fromLocation, userID).
					Return(nil, domain.ErrTransferNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newWorkflowHandler(t)
			tt.setupMocks(mockService)

			payload, err := json.Marshal(handlers.TransitionRequest{LocationID: fromLocation})
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/v1/transfers/"+transferID.String()+"/prepare", bytes.NewReader(payload))
			req.SetPathValue("id", transferID.String())
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			w := httptest.NewRecorder()

			handler.PrepareTransfer(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestWorkflowHandler_ListTransfers(t *testing.T) {
	locationID := uuid.New()

	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockWorkflowService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:  "lists_transfers_for_location",
			query: "?location_id=" + locationID.String(),
			setupMocks: func(m *mocks.MockWorkflowService) {
				transfer := helpers.CreateTestTransfer()
				m.EXPECT().
					ListTransfers(gomock.Any(), locationID).
					Return([]*domain.TransferRequest{transfer}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response struct {
					Transfers []*domain.TransferRequest `json:"transfers"`
				}
				require.NoError(t, json.Unmarshal(body, &response))
				require.Len(t, response.Transfers, 1)
				assert.Equal(t, domain.TransferRequested, response.Transfers[0].Status)
			},
		},
		{
			name:           "missing_location_query",
			query:          "",
			setupMocks:     func(m *mocks.MockWorkflowService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody:   func(t *testing.T, body []byte) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newWorkflowHandler(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/transfers"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ListTransfers(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateBody(t, w.Body.Bytes())
		})
	}
}
