//go:build !darwin

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHideApplication_Unsupported(t *testing.T) {
	assert.ErrorIs(t, hideApplication(), ErrUnsupported)
}
