package osutil

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	if runtime.GOOS == Windows {
		assert.Equal(t, "C:\\Windows\\system32\\notepad.exe", Editor())
	} else {
		assert.Equal(t, "nano", Editor())
	}

	t.Setenv("EDITOR", "vim")
	assert.Equal(t, "vim", Editor())

	t.Setenv("VISUAL", "code --wait")
	assert.Equal(t, "code --wait", Editor())
}
