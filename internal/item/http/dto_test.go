package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit-backend/internal/item"
)

func TestItemResponseJSON(t *testing.T) {
	t.Run("requestId is null when the item answers no request", func(t *testing.T) {
		body, err := json.Marshal(NewItemResponse(&item.Item{
			ID:          1,
			Name:        "Drill",
			Description: "Cordless drill",
			Available:   true,
		}))
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"id": 1,
			"name": "Drill",
			"description": "Cordless drill",
			"available": true,
			"requestId": null
		}`, string(body))
	})

	t.Run("requestId carries the linked request", func(t *testing.T) {
		requestID := int64(5)
		body, err := json.Marshal(NewItemResponse(&item.Item{
			ID:        1,
			Name:      "Drill",
			Available: true,
			RequestID: &requestID,
		}))
		require.NoError(t, err)

		assert.Contains(t, string(body), `"requestId":5`)
	})
}
