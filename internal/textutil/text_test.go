package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Hello world again", PlainText("<h1>Hello</h1>\n<p>world <b>again</b></p><style>p{}</style>"))
	assert.Equal(t, "", PlainText(""))
	assert.Equal(t, "Tom & Jerry", PlainText("<p>Tom &amp; Jerry</p>"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héll", Truncate("héllo", 4))
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "", Truncate("", 3))
}
