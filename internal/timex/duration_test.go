package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
		assert.Equal(t, 90*time.Second, d.Duration)
	})

	t.Run("integer nanoseconds", func(t *testing.T) {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(`60000000000`), &d))
		assert.Equal(t, time.Minute, d.Duration)
	})

	t.Run("invalid value", func(t *testing.T) {
		var d Duration
		assert.Error(t, json.Unmarshal([]byte(`true`), &d))
	})

	t.Run("invalid string", func(t *testing.T) {
		var d Duration
		assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: time.Minute})
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}
