package domain

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		env := NewEnvelope(http.StatusCreated, []byte(`{"id":"ref-1"}`))
		assert.Equal(t, "201", env.Status)
		assert.Equal(t, http.StatusCreated, env.StatusCode())
		assert.True(t, env.IsJSON())
		assert.JSONEq(t, `{"id":"ref-1"}`, string(env.Data))
		assert.Nil(t, env.Raw)
	})
	t.Run("not json", func(t *testing.T) {
		body := []byte("<html>Bad Gateway</html>")
		env := NewEnvelope(http.StatusBadGateway, body)
		assert.Equal(t, "502", env.Status)
		assert.False(t, env.IsJSON())
		assert.Equal(t, body, env.Raw)
		assert.Nil(t, env.Data)
	})
	t.Run("empty body", func(t *testing.T) {
		env := NewEnvelope(http.StatusNoContent, nil)
		assert.Equal(t, "204", env.Status)
		assert.False(t, env.IsJSON())
		assert.Equal(t, []byte{}, env.Raw)
	})
	t.Run("error status keeps json", func(t *testing.T) {
		env := NewEnvelope(http.StatusBadRequest, []byte(`{"name":["This field may not be blank."]}`))
		assert.Equal(t, "400", env.Status)
		assert.True(t, env.IsJSON())
	})
}

func TestEnvelope_Decode(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		env := NewEnvelope(http.StatusOK, []byte(`{"referenceId":"42","status":"scheduled"}`))
		var res struct {
			ReferenceId string `json:"referenceId"`
			Status      string `json:"status"`
		}
		require.NoError(t, env.Decode(&res))
		assert.Equal(t, "42", res.ReferenceId)
		assert.Equal(t, "scheduled", res.Status)
	})
	t.Run("raw", func(t *testing.T) {
		env := NewEnvelope(http.StatusInternalServerError, []byte("oops"))
		var res map[string]any
		assert.ErrorIs(t, env.Decode(&res), ErrNotJSON)
	})
}

func TestEnvelope_MarshalJSON(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(NewEnvelope(http.StatusOK, []byte(`{"ok": true}`)))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"200","result":{"ok":true}}`, string(data))
	})
	t.Run("raw", func(t *testing.T) {
		data, err := json.Marshal(NewEnvelope(http.StatusNotFound, []byte("not found")))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"404","result":"not found"}`, string(data))
	})
}
