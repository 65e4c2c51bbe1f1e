/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package refactor

import "strings"

// ExtractCode extracts the first fenced code block from a model response.
// Models frequently wrap a rewritten file in ```lang fences even when asked
// for bare file content; the fence is presentation, not code, so it is
// stripped. A response with no complete fence is returned unchanged.
func ExtractCode(responseText string) string {
	lines := strings.Split(responseText, "\n")

	open := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			open = i
			break
		}
	}
	if open == -1 {
		return responseText
	}

	for j := open + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "```" {
			return strings.Join(lines[open+1:j], "\n")
		}
	}

	// Opening fence without a close: treat the response as bare content.
	return responseText
}
