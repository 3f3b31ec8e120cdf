package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-admin/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	userID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	created := &model.Order{
		ID:          orderID,
		UserID:      userID,
		TotalAmount: 35,
		OrderDate:   time.Now(),
		Items: []model.OrderItem{
			{ID: uuid.New(), OrderID: orderID, ProductID: productID, Quantity: 2, Price: 10},
		},
	}

	validBody, err := json.Marshal(map[string]any{
		"userId": userID,
		"items":  []map[string]any{{"productId": productID, "quantity": 2, "price": 10}},
	})
	require.NoError(t, err)

	tests := []struct {
		name            string
		body            string
		mockReturn      *model.Order
		mockError       error
		expectedStatus  int
		expectedMessage string
		expectService   bool
	}{
		{
			name:           "Success",
			body:           string(validBody),
			mockReturn:     created,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:            "Empty items",
			body:            `{"userId":"` + userID.String() + `","items":[]}`,
			mockError:       model.ErrInvalidOrder,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Items required",
			expectService:   true,
		},
		{
			name:            "Invalid item",
			body:            string(validBody),
			mockError:       model.ErrInvalidItem,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: model.ErrInvalidItem.Message,
			expectService:   true,
		},
		{
			name:            "Malformed user id",
			body:            `{"userId":"u1","items":[{"productId":"` + productID.String() + `","quantity":1,"price":1}]}`,
			mockError:       model.ErrInvalidUserID,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "userId is invalid",
			expectService:   true,
		},
		{
			name:            "Blank user id with empty items",
			body:            `{"userId":"","items":[]}`,
			mockError:       model.ErrInvalidOrder,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Items required",
			expectService:   true,
		},
		{
			name:           "Invalid JSON",
			body:           "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:            "Service internal error",
			body:            string(validBody),
			mockError:       errors.New("database connection failed"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "database connection failed",
			expectService:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, orderID.String(), body["_id"])
				assert.Equal(t, userID.String(), body["userId"])
				assert.Equal(t, 35.0, body["totalAmount"])
			} else {
				resp := decodeError(t, w)
				assert.True(t, resp.Error)
				if tt.expectedMessage != "" {
					assert.Equal(t, tt.expectedMessage, resp.Message)
				}
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOrderHandler_List(t *testing.T) {
	mockService := new(MockOrderService)
	handler := NewOrderHandler(mockService, zerolog.Nop())

	views := []model.OrderView{
		{
			ID:          uuid.New(),
			User:        &model.UserSummary{ID: uuid.New(), Name: "Kiran", Email: "k@example.com", Mobile: "555"},
			TotalAmount: 20,
			Items: []model.OrderItemView{
				{ID: uuid.New(), Product: &model.ProductSummary{ID: uuid.New(), Name: "Idli", Price: 4}, Quantity: 5, Price: 4},
			},
		},
		{
			ID:          uuid.New(),
			User:        nil,
			TotalAmount: 3,
			Items:       []model.OrderItemView{{ID: uuid.New(), Product: nil, Quantity: 1, Price: 3}},
		},
	}
	mockService.On("List", mock.Anything).Return(views, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)

	user := body[0]["userId"].(map[string]any)
	assert.Equal(t, "Kiran", user["name"])
	assert.Equal(t, "k@example.com", user["email"])
	assert.Equal(t, "555", user["mobile"])

	items := body[0]["items"].([]any)
	product := items[0].(map[string]any)["productId"].(map[string]any)
	assert.Equal(t, "Idli", product["name"])

	assert.Nil(t, body[1]["userId"])
	assert.Nil(t, body[1]["items"].([]any)[0].(map[string]any)["productId"])
}
