package report

import (
	"fmt"
	"io"
	"strings"
)

// Format enumerates the supported report encodings.
type Format string

// Supported report formats.
const (
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

const unsupportedFormatTemplateConstant = "unsupported report format: %s"

// Formats lists the supported formats, default first.
func Formats() []string {
	return []string{string(FormatMarkdown), string(FormatYAML)}
}

// RenderOptions selects the optional report sections.
type RenderOptions struct {
	Verbose   bool
	NotNeeded bool
	Language  string
}

// Renderer writes a report to an output stream.
type Renderer interface {
	Render(writer io.Writer, document Report) error
}

// NewRenderer constructs the renderer for the requested format.
func NewRenderer(format Format, options RenderOptions) (Renderer, error) {
	switch Format(strings.ToLower(strings.TrimSpace(string(format)))) {
	case FormatMarkdown, "":
		messages, messagesError := NewMessages(options.Language)
		if messagesError != nil {
			return nil, messagesError
		}
		return &MarkdownRenderer{messages: messages, options: options}, nil
	case FormatYAML:
		return &YAMLRenderer{options: options}, nil
	default:
		return nil, fmt.Errorf(unsupportedFormatTemplateConstant, format)
	}
}
