package ports

import "rosws/internal/types"

type OutputPort interface {
	WriteContext(files types.ContextMap) error
	WriteDependencies(workspace string, result types.DependencyResult, format types.OutputFormat) error
}
