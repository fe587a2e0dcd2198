package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fostercareuk/directory-service/internal/domain"
)

func TestLocationContent_ParseContent(t *testing.T) {
	t.Run("object payload used as-is", func(t *testing.T) {
		c := &domain.LocationContent{
			RawContent: json.RawMessage(`{"intro": "Fostering in Camden", "faq": []}`),
		}
		doc := c.ParseContent()
		assert.NotNil(t, doc)
		assert.Equal(t, "Fostering in Camden", doc["intro"])
	})

	t.Run("legacy string-encoded payload reparsed", func(t *testing.T) {
		inner := `{"intro": "Fostering in Leeds"}`
		raw, err := json.Marshal(inner)
		assert.NoError(t, err)

		c := &domain.LocationContent{RawContent: raw}
		doc := c.ParseContent()
		assert.NotNil(t, doc)
		assert.Equal(t, "Fostering in Leeds", doc["intro"])
	})

	t.Run("malformed string payload resolves to nil", func(t *testing.T) {
		// The stored value is the JSON string "{not json".
		raw, err := json.Marshal("{not json")
		assert.NoError(t, err)

		c := &domain.LocationContent{RawContent: raw}
		assert.Nil(t, c.ParseContent())
	})

	t.Run("invalid raw bytes resolve to nil", func(t *testing.T) {
		c := &domain.LocationContent{RawContent: json.RawMessage(`{broken`)}
		assert.Nil(t, c.ParseContent())
	})

	t.Run("non-object payload resolves to nil", func(t *testing.T) {
		c := &domain.LocationContent{RawContent: json.RawMessage(`[1, 2, 3]`)}
		assert.Nil(t, c.ParseContent())
	})

	t.Run("empty payload resolves to nil", func(t *testing.T) {
		c := &domain.LocationContent{}
		assert.Nil(t, c.ParseContent())
	})
}
