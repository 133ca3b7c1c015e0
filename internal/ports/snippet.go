package ports

import "rosws/internal/types"

type SnippetPort interface {
	RenderSnippet(args types.SnippetArgs) (string, error)
	RenderUserSnippet(args types.SnippetArgs) (string, error)
}
