package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRenders(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "Start&Connect API", doc.Info.Title)
	assert.Contains(t, doc.Paths["/groups"], "get")
	assert.Contains(t, doc.Paths["/groups"], "post")
	assert.Contains(t, doc.Paths["/admin/users/{id}/role"], "put")
	assert.Contains(t, doc.Definitions, "middleware.ErrorPayload")
	assert.Contains(t, doc.Definitions, "model.Page-model_Center")
}
