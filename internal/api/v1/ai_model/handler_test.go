package ai_model_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptshq/internal/api/v1/ai_model"
	"promptshq/internal/database"
	"promptshq/internal/models"
	"promptshq/internal/services"
	"promptshq/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T) *ai_model.Handler {
	t.Helper()
	store, db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return ai_model.NewHandler(services.NewAIModelService(store))
}

func TestGetModels(t *testing.T) {
	h := setupHandler(t)
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		queryParams    string
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:           "All models in catalog order",
			queryParams:    "",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var resp struct {
					Status int                          `json:"status"`
					Data   ai_model.AIModelListResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, 200, resp.Status)
				assert.Equal(t, 8, resp.Data.Total)
				assert.Equal(t, "GPT-4", resp.Data.Models[0].Name)
			},
		},
		{
			name:           "Filter by name",
			queryParams:    "?name=gpt",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var resp struct {
					Data ai_model.AIModelListResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, 2, resp.Data.Total)
				for _, m := range resp.Data.Models {
					assert.Equal(t, models.AIModelStatusOpen, m.Status)
				}
			},
		},
		{
			name:           "Closed models -> empty",
			queryParams:    "?status=closed",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var resp struct {
					Data ai_model.AIModelListResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, 0, resp.Data.Total)
				assert.NotNil(t, resp.Data.Models)
			},
		},
		{
			name:           "Unknown status",
			queryParams:    "?status=draft",
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, body []byte) {
				var resp utils.Response
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, `Unknown model status "draft".`, resp.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest("GET", "/ai-models"+tt.queryParams, nil)

			h.GetModels(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkResponse(t, w.Body.Bytes())
		})
	}
}
