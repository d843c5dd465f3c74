package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetManager(t *testing.T) {
	am := NewManager()

	t.Run("GetIcon", func(t *testing.T) {
		icon, err := am.GetIcon("wiggle.png")
		assert.NoError(t, err)
		assert.NotNil(t, icon)
		assert.Equal(t, "wiggle.png", icon.Name())
		assert.NotEmpty(t, icon.Content())

		_, err = am.GetIcon("non_existent.png")
		assert.Error(t, err)

		_, err = am.GetIcon("")
		assert.Error(t, err)
	})

	t.Run("GetText", func(t *testing.T) {
		for _, name := range []string{"help.txt", "about.txt"} {
			text, err := am.GetText(name)
			assert.NoError(t, err, name)
			assert.NotEmpty(t, text, name)
		}

		_, err := am.GetText("non_existent.txt")
		assert.Error(t, err)
	})
}
