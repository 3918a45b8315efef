package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdprose/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		body string
	}{
		// Shebangs win over every hint.
		{"bash", "#!/bin/bash\necho hello"},
		{"bash", "#!/bin/sh\nls -la"},
		{"python", "#!/usr/bin/env python3\nprint('hello')"},

		// Interactive sessions, common in tutorials.
		{"pycon", ">>> import math\n>>> math.pi\n3.141592653589793"},
		{"console", "$ python -m pip install requests"},

		{"go", "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}"},
		{"python", "def greet(name):\n    return f'Hi {name}'"},
		{"python", "from pathlib import Path\nPath('.').resolve()"},
		{"python", "if __name__ == '__main__':\n    main()"},
		{"html", "<!DOCTYPE html>\n<html>\n<body></body>\n</html>"},
		{"json", `{"name": "realpython", "stars": 42}`},
		{"json", `[{"id": 1}, {"id": 2}]`},
		{"dockerfile", "FROM python:3.12\nWORKDIR /app\nCOPY . .\nRUN pip install -r requirements.txt"},
		{"sql", "select title from articles where published = 1;"},
		{"rust", "fn main() {\n    let mut total = 0;\n}"},
		{"javascript", "const add = (a, b) => a + b;\nconsole.log(add(1, 2));"},
		{"yaml", "name: docs\non: push\njobs:\n  - build"},

		{langdetect.Text, ""},
		{langdetect.Text, "   \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+firstLine(tt.body), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.lang, langdetect.Detect([]byte(tt.body)))
		})
	}
}

func TestDetect_GoImportBlockIsNotPython(t *testing.T) {
	t.Parallel()

	body := "import (\n\t\"fmt\"\n)\n\nfunc main() { fmt.Println(1) }"
	assert.NotEqual(t, "python", langdetect.Detect([]byte(body)))
}

func TestDetect_TagsAreLowercase(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"#!/bin/sh\necho", "package main", ">>> 1 + 1"} {
		tag := langdetect.Detect([]byte(body))
		assert.Regexp(t, `^[a-z+]+$`, tag, body)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	goBody := []byte("package main\n")
	knownTags := func(tag string) bool { return tag == "go" || tag == "python" }

	assert.Equal(t, "go", langdetect.Suggest(goBody, knownTags))
	assert.Equal(t, "go", langdetect.Suggest(goBody, nil), "nil filter accepts everything")
	assert.Empty(t, langdetect.Suggest([]byte("$ make"), knownTags), "console is not a known tag here")
	assert.Empty(t, langdetect.Suggest(nil, knownTags))
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	if s == "" {
		return "empty"
	}
	return s
}
