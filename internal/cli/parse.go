package cli

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rosws/internal/types"
)

func parseReadPolicy(value string) (types.ReadErrorPolicy, error) {
	switch types.ReadErrorPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", types.ReadErrorPolicyAbort:
		return types.ReadErrorPolicyAbort, nil
	case types.ReadErrorPolicySkip:
		return types.ReadErrorPolicySkip, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported read error policy: " + value)
	}
}

func parseOutputFormat(value string) (types.OutputFormat, error) {
	switch types.OutputFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", types.OutputFormatText:
		return types.OutputFormatText, nil
	case types.OutputFormatYAML:
		return types.OutputFormatYAML, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + value)
	}
}
