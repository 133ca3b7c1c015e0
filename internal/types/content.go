package types

// FileContent is the payload of one build-context entry. Exactly one of
// Text or Data is meaningful, selected by Kind.
type FileContent struct {
	Kind ContentKind
	Text string
	Data []byte
}

func TextContent(text string) FileContent {
	return FileContent{Kind: ContentKindText, Text: text}
}

func BinaryContent(data []byte) FileContent {
	return FileContent{Kind: ContentKindBinary, Data: data}
}

// Bytes returns the raw bytes regardless of representation.
func (c FileContent) Bytes() []byte {
	if c.Kind == ContentKindText {
		return []byte(c.Text)
	}
	return c.Data
}

func (c FileContent) Size() int {
	if c.Kind == ContentKindText {
		return len(c.Text)
	}
	return len(c.Data)
}

// VirtualRoot is the directory every selected file is placed under inside
// the build context.
const VirtualRoot = "ros_ws_src"

// ContextMap maps virtual paths to file contents.
type ContextMap map[string]FileContent

type SelectionResult struct {
	Files       ContextMap
	Diagnostics []Diagnostic
}
