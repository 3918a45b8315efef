// Package langdetect guesses the language of a fenced code block body so an
// untagged fence can be reported with a concrete tag to add.
//
// Cheap textual hints are tried first because tutorial snippets are short and
// often ambiguous for a statistical classifier. go-enry resolves the rest.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be detected with confidence.
const Text = "text"

// hint recognizes one language from its body.
type hint struct {
	lang  string
	match func(body []byte, trimmed []byte) bool
}

// hints are tried in order; the first match wins.
//
//nolint:gochecknoglobals // Read-only lookup table
var hints = []hint{
	{"pycon", func(_, trimmed []byte) bool { return bytes.HasPrefix(trimmed, []byte(">>> ")) }},
	{"console", func(_, trimmed []byte) bool { return bytes.HasPrefix(trimmed, []byte("$ ")) }},
	{"go", func(_, trimmed []byte) bool { return bytes.HasPrefix(trimmed, []byte("package ")) }},
	{"python", isPython},
	{"html", func(_, trimmed []byte) bool {
		return containsAny(bytes.ToLower(trimmed), "<!doctype html", "<html", "<head>", "<body>")
	}},
	{"json", func(_, trimmed []byte) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`))
	}},
	{"dockerfile", func(body, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
			(bytes.Contains(body, []byte("\nFROM ")) && bytes.Contains(body, []byte("\nRUN "))) ||
			(bytes.Contains(body, []byte("WORKDIR ")) && bytes.Contains(body, []byte("COPY ")))
	}},
	{"sql", func(_, trimmed []byte) bool {
		upper := strings.ToUpper(string(trimmed))
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(body, _ []byte) bool { return containsAny(body, "fn main()", "println!", "let mut ") }},
	{"javascript", func(body, _ []byte) bool { return containsAny(body, "=>", "const ", "let ", "console.log") }},
	{"yaml", isYAML},
}

// classifierCandidates limits go-enry's classifier to languages common in prose.
//
//nolint:gochecknoglobals // Read-only lookup table
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns the fence tag for body, or Text when unsure.
func Detect(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(body); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(body)
	for _, h := range hints {
		if h.match(body, trimmed) {
			return h.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(body, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

// Suggest returns the detected tag for body if accept allows it.
// It returns "" when nothing useful was detected.
func Suggest(body []byte, accept func(tag string) bool) string {
	lang := Detect(body)
	if lang == Text {
		return ""
	}
	if accept != nil && !accept(lang) {
		return ""
	}
	return lang
}

func isPython(body, _ []byte) bool {
	text := string(body)
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return true
	}
	// Python imports, not Go's "import (".
	if strings.Contains(text, "import ") && !strings.Contains(text, "import (") {
		if strings.Contains(text, "from ") || strings.HasPrefix(strings.TrimSpace(text), "import ") {
			return true
		}
	}
	return strings.Contains(text, "__name__") || strings.Contains(text, "__main__")
}

// isYAML counts "key: value" lines and root list items.
func isYAML(body, _ []byte) bool {
	count := 0
	for _, line := range bytes.Split(body, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}

func containsAny(b []byte, subs ...string) bool {
	for _, s := range subs {
		if bytes.Contains(b, []byte(s)) {
			return true
		}
	}
	return false
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}
