package formatters

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when a chat reply carries no decodable JSON value.
var ErrNoJSON = errors.New("ai-service returned non-json content")

// SkillsPrompt builds the chat input asking for categorized skills found in
// text. The reply is expected as a bare JSON array.
func SkillsPrompt(text, language string) string {
	var b strings.Builder
	b.WriteString("Extract the technical skills mentioned in the text below and group them into categories ")
	b.WriteString("such as Languages, Frameworks, Databases, Cloud or Tools.\n")
	b.WriteString("Return ONLY a JSON array of objects {\"category\": string, \"skills\": [string]} and NOTHING ELSE. ")
	b.WriteString("Do not include commentary, markdown or code fences. Use the skill names exactly as written.\n")
	if language != "" {
		fmt.Fprintf(&b, "Write category names in %s.\n", language)
	}
	b.WriteString("\nTEXT:\n")
	b.WriteString(text)
	return b.String()
}

// ExtractJSON returns the JSON value in a chat reply. When the reply is not
// valid JSON as a whole, the substring from the first opening bracket to the
// last matching closing bracket is tried, arrays and objects alike.
func ExtractJSON(output string) (json.RawMessage, error) {
	s := strings.TrimSpace(output)
	if json.Valid([]byte(s)) {
		return json.RawMessage(s), nil
	}
	arr, obj := strings.IndexByte(s, '['), strings.IndexByte(s, '{')
	order := [][2]byte{{'[', ']'}, {'{', '}'}}
	if obj >= 0 && (arr < 0 || obj < arr) {
		order[0], order[1] = order[1], order[0]
	}
	for _, pair := range order {
		start := strings.IndexByte(s, pair[0])
		end := strings.LastIndexByte(s, pair[1])
		if start >= 0 && end > start {
			sub := s[start : end+1]
			if json.Valid([]byte(sub)) {
				return json.RawMessage(sub), nil
			}
		}
	}
	return nil, ErrNoJSON
}
