package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusSet(t *testing.T) {
	t.Run("initial status", func(t *testing.T) {
		assert.Equal(t, StatusScheduled, InitialStatus())
	})

	t.Run("closed set", func(t *testing.T) {
		for _, s := range AllStatuses() {
			assert.True(t, IsValidStatus(s), string(s))
		}
		assert.False(t, IsValidStatus("Pending"))
		assert.False(t, IsValidStatus("scheduled")) // case sensitive
		assert.False(t, IsValidStatus(""))
	})
}

func TestClassify(t *testing.T) {
	t.Run("every known status has tints", func(t *testing.T) {
		for _, s := range AllStatuses() {
			c := Classify(s)
			assert.NotEmpty(t, c.Background, string(s))
			assert.NotEmpty(t, c.Text, string(s))
			assert.NotEmpty(t, c.Border, string(s))
		}
	})

	t.Run("unknown labels fall back to neutral gray", func(t *testing.T) {
		c := Classify("Rescheduled")
		assert.Equal(t, "bg-gray-500/15", c.Background)
		assert.Equal(t, "text-gray-500", c.Text)
	})
}
