package llm

import "strings"

// CleanText normalizes raw model output: line endings become "\n",
// markdown fence lines are removed while their content is kept, and
// surrounding whitespace is trimmed. Blank output yields "".
func CleanText(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.TrimSpace(stripCodeFences(s))
}

// stripCodeFences drops ``` and ```lang lines.
func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
