package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskString(t *testing.T) {
	assert.Equal(t, "*** ****", MaskString("Hey Jude"))
	assert.Equal(t, "**/**", MaskString("AC/DC"))
	assert.Equal(t, "*****' ***", MaskString("Livin' Joy"))
	assert.Equal(t, "***** ***", MaskString("Blink 182"))
	assert.Equal(t, "***** (****. *)", MaskString("Title (feat. X)"))
	assert.Equal(t, "", MaskString(""))
}
