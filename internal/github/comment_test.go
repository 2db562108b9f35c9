package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormattingComment(t *testing.T) {
	url := "https://github.com/format-bot/widgets/commit/0123abcd"
	want := "Hi,\n\n" +
		"I've run clang-format-3.8 and found that the code needs formatting.\n" +
		"Here's a commit that fixes this. " + url + "\n\n" +
		"To use the commit you can do\n\n" +
		"    curl -o format.diff " + url + ".diff\n" +
		"    git apply format.diff\n"

	assert.Equal(t, want, FormattingComment("clang-format-3.8", url))
}
