package adapters

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rosws/internal/ports"
	"rosws/internal/types"
)

//go:embed templates/*.tmpl
var snippetTemplates embed.FS

const (
	snippetTemplateName     = "ros_ws_snippet.Dockerfile.tmpl"
	userSnippetTemplateName = "ros_ws_user_snippet.Dockerfile.tmpl"
)

type SnippetTemplateAdapter struct{}

func NewSnippetTemplateAdapter() SnippetTemplateAdapter {
	return SnippetTemplateAdapter{}
}

func (a SnippetTemplateAdapter) RenderSnippet(args types.SnippetArgs) (string, error) {
	return a.render(snippetTemplateName, args)
}

func (a SnippetTemplateAdapter) RenderUserSnippet(args types.SnippetArgs) (string, error) {
	return a.render(userSnippetTemplateName, args)
}

func (a SnippetTemplateAdapter) render(name string, args types.SnippetArgs) (string, error) {
	tmpl, err := template.New(name).
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(snippetTemplates, "templates/"+name)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to load " + name).
			WithCause(err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, args); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render " + name).
			WithCause(err)
	}
	return buf.String(), nil
}

var _ ports.SnippetPort = SnippetTemplateAdapter{}
