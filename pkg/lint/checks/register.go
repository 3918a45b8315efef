package checks

import (
	"errors"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
)

// Check IDs.
const (
	IDBadWords        = "RP001"
	IDLineLength      = "RP002"
	IDBadPhrases      = "RP003"
	IDContractions    = "RP004"
	IDCodeFormatter   = "RP005"
	IDEndingColon     = "RP006"
	IDDanglingSection = "RP007"
	IDBadLinkAnchor   = "RP008"
)

// Check names.
const (
	NameBadWords        = "bad-words"
	NameLineLength      = "line-length"
	NameBadPhrases      = "bad-phrases"
	NameContractions    = "contractions"
	NameCodeFormatter   = "code-formatter"
	NameEndingColon     = "ending-colon"
	NameDanglingSection = "dangling-section"
	NameBadLinkAnchor   = "bad-link-anchor"
)

// ErrNoDictionary is returned when a check needing dictionaries is built without them.
var ErrNoDictionary = errors.New("check requires a dictionary")

// Definitions returns the built-in checks in the order they run.
func Definitions() []lint.Definition {
	return []lint.Definition{
		{
			ID:              IDBadWords,
			Name:            NameBadWords,
			Title:           "Bad Word Test",
			Description:     "Words and two-word phrases that weaken technical prose",
			DefaultSeverity: config.SeverityError,
			New: func(env lint.Env) (lint.Check, error) {
				if env.Dict == nil {
					return nil, ErrNoDictionary
				}
				return NewBadWordsCheck(env.Dict), nil
			},
		},
		{
			ID:              IDLineLength,
			Name:            NameLineLength,
			Title:           "Line Length Test",
			Description:     "Lines must not exceed the length limit once links are reduced to their text",
			DefaultSeverity: config.SeverityError,
			// Limits come only from line_length and warn_length.
			New: func(env lint.Env) (lint.Check, error) {
				if env.Config == nil {
					return NewLineLengthCheck(config.DefaultLineLength, 0), nil
				}
				return NewLineLengthCheck(env.Config.LineLength, env.Config.WarnLength), nil
			},
		},
		{
			ID:              IDBadPhrases,
			Name:            NameBadPhrases,
			Title:           "Bad Phrase Test",
			Description:     "Phrases that add words without adding meaning",
			DefaultSeverity: config.SeverityError,
			New: func(env lint.Env) (lint.Check, error) {
				if env.Dict == nil {
					return nil, ErrNoDictionary
				}
				return NewBadPhrasesCheck(env.Dict), nil
			},
		},
		{
			ID:              IDContractions,
			Name:            NameContractions,
			Title:           "Contraction Test",
			Description:     "Phrases that read more naturally as a contraction",
			DefaultSeverity: config.SeverityError,
			New: func(env lint.Env) (lint.Check, error) {
				if env.Dict == nil {
					return nil, ErrNoDictionary
				}
				return NewContractionsCheck(env.Dict), nil
			},
		},
		{
			ID:              IDCodeFormatter,
			Name:            NameCodeFormatter,
			Title:           "Code Formatter Test",
			Description:     "Code blocks need a known formatter tag and a quoted linenums value",
			DefaultSeverity: config.SeverityError,
			Options: map[string]any{
				"suggest": true,
			},
			New: func(env lint.Env) (lint.Check, error) {
				if env.Dict == nil {
					return nil, ErrNoDictionary
				}
				return NewCodeFormatterCheck(env.Dict, env.OptionBool("suggest", true)), nil
			},
		},
		{
			ID:              IDEndingColon,
			Name:            NameEndingColon,
			Title:           "Ending Colon Test",
			Description:     "Code blocks follow one blank line after text ending in a colon",
			DefaultSeverity: config.SeverityError,
			New: func(lint.Env) (lint.Check, error) {
				return NewEndingColonCheck(), nil
			},
		},
		{
			ID:              IDDanglingSection,
			Name:            NameDanglingSection,
			Title:           "Dangling Code Block or Alert Test",
			Description:     "Sections should close with prose, not a code block or alert",
			DefaultSeverity: config.SeverityError,
			Options: map[string]any{
				"filler": []string{},
			},
			ValidateOptions: func(options map[string]any) error {
				_, err := compileFiller(lint.Env{Options: options}.OptionStringSlice("filler", nil))
				return err
			},
			New: func(env lint.Env) (lint.Check, error) {
				return NewDanglingSectionCheck(env.OptionStringSlice("filler", nil))
			},
		},
		{
			ID:              IDBadLinkAnchor,
			Name:            NameBadLinkAnchor,
			Title:           "Bad Link Anchor Test",
			Description:     `Link text should describe the target rather than say "here" or "this link"`,
			DefaultSeverity: config.SeverityError,
			New: func(lint.Env) (lint.Check, error) {
				return NewBadLinkAnchorCheck(), nil
			},
		},
	}
}

// Register adds every built-in check to registry.
func Register(registry *lint.Registry) error {
	for _, def := range Definitions() {
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding the built-in checks.
func NewRegistry() *lint.Registry {
	registry := lint.NewRegistry()
	// Built-in definitions are always valid.
	_ = Register(registry)
	return registry
}

// TemplateChecks describes the built-in checks for config templates.
func TemplateChecks(registry *lint.Registry) []config.CheckInfo {
	defs := registry.Definitions()
	infos := make([]config.CheckInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, config.CheckInfo{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Severity:    def.DefaultSeverity,
			Options:     def.Options,
		})
	}
	return infos
}
