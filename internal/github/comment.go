package github

import (
	"fmt"
	"strings"
)

// FormattingComment renders the pull request comment announcing a fix-up
// commit produced by tool.
func FormattingComment(tool, commitURL string) string {
	var b strings.Builder
	b.WriteString("Hi,\n\n")
	fmt.Fprintf(&b, "I've run %s and found that the code needs formatting.\n", tool)
	fmt.Fprintf(&b, "Here's a commit that fixes this. %s\n\n", commitURL)
	b.WriteString("To use the commit you can do\n\n")
	fmt.Fprintf(&b, "    curl -o format.diff %s.diff\n", commitURL)
	b.WriteString("    git apply format.diff\n")
	return b.String()
}
