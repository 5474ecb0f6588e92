package services

import (
	"strings"
	"testing"

	"promptshq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDiagramIsContentBlind(t *testing.T) {
	first, err := GenerateDiagram("user signup", models.DiagramFlowchart)
	require.NoError(t, err)
	second, err := GenerateDiagram("something else entirely", models.DiagramFlowchart)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "flowchart TD"))
}

func TestGenerateDiagramEveryType(t *testing.T) {
	headers := map[models.DiagramType]string{
		models.DiagramFlowchart: "flowchart TD",
		models.DiagramSequence:  "sequenceDiagram",
		models.DiagramClass:     "classDiagram",
		models.DiagramState:     "stateDiagram-v2",
		models.DiagramER:        "erDiagram",
		models.DiagramGantt:     "gantt",
		models.DiagramPie:       "pie",
		models.DiagramGitGraph:  "gitGraph",
		models.DiagramOther:     "flowchart TD",
	}
	for _, dt := range models.DiagramTypes {
		code, err := GenerateDiagram("anything", dt)
		require.NoError(t, err, dt)
		assert.True(t, strings.HasPrefix(code, headers[dt]), dt)

		example, err := DiagramExample(dt)
		require.NoError(t, err)
		assert.NotEmpty(t, example)
	}
}

func TestGenerateDiagramValidation(t *testing.T) {
	_, err := GenerateDiagram("  ", models.DiagramFlowchart)
	require.Error(t, err)
	assert.Equal(t, "Please enter a description for your diagram.", err.Error())

	_, err = GenerateDiagram("a flow", "")
	require.Error(t, err)
	assert.Equal(t, "Please select a diagram type.", err.Error())

	_, err = GenerateDiagram("a flow", "mindmap")
	assert.True(t, IsValidation(err))

	_, err = DiagramExample("mindmap")
	assert.True(t, IsValidation(err))
}
