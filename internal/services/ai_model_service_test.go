package services

import (
	"context"
	"testing"

	"promptshq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAIModels(t *testing.T) {
	svc := NewAIModelService(setupTestStore(t))
	ctx := context.Background()

	all, err := svc.FindAIModels(ctx, AIModelFilter{})
	require.NoError(t, err)
	require.Len(t, all, 8)
	assert.Equal(t, "GPT-4", all[0].Name)
	assert.Equal(t, "Custom Model", all[7].Name)

	claude, err := svc.FindAIModels(ctx, AIModelFilter{Name: "claude"})
	require.NoError(t, err)
	assert.Len(t, claude, 2)

	closed, err := svc.FindAIModels(ctx, AIModelFilter{Status: string(models.AIModelStatusClosed)})
	require.NoError(t, err)
	assert.Empty(t, closed)

	_, err = svc.FindAIModels(ctx, AIModelFilter{Status: "draft"})
	assert.True(t, IsValidation(err))

	names, err := svc.OpenModelNames(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "Gemini Flash")
}
