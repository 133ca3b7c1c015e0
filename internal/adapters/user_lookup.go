package adapters

import (
	"os"
	"os/user"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rosws/internal/ports"
)

type OSUserAdapter struct{}

func NewOSUserAdapter() OSUserAdapter {
	return OSUserAdapter{}
}

// UserName returns the login name of the invoking user, falling back to
// $USER when the account database has no entry (common in containers).
func (a OSUserAdapter) UserName() (string, error) {
	if current, err := user.Current(); err == nil && strings.TrimSpace(current.Username) != "" {
		return strings.TrimSpace(current.Username), nil
	}
	if name := strings.TrimSpace(os.Getenv("USER")); name != "" {
		return name, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("failed to determine current user name")
}

var _ ports.UserLookupPort = OSUserAdapter{}
