package app

import (
	"github.com/spf13/afero"

	"rosws/internal/adapters"
	"rosws/internal/ports"
)

type Service struct {
	FS         afero.Fs
	Workspace  ports.WorkspacePort
	PackageXML ports.PackageXMLPort
	Users      ports.UserLookupPort
	Snippets   ports.SnippetPort
	Outputs    func(dir string) ports.OutputPort
}

func NewService() Service {
	return NewServiceWithFs(afero.NewOsFs())
}

func NewServiceWithFs(fs afero.Fs) Service {
	return Service{
		FS:         fs,
		Workspace:  adapters.NewWorkspaceAdapter(fs),
		PackageXML: adapters.NewPackageXMLAdapter(fs),
		Users:      adapters.NewOSUserAdapter(),
		Snippets:   adapters.NewSnippetTemplateAdapter(),
		Outputs: func(dir string) ports.OutputPort {
			return adapters.NewOutputFileAdapter(fs, dir)
		},
	}
}
