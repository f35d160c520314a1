package installer

import (
	"github.com/arthur-debert/gulps/pkg/errors"
)

// Client is a JavaScript package manager.
type Client string

const (
	NPM  Client = "npm"
	Yarn Client = "yarn"
	PNPM Client = "pnpm"
)

// Clients lists the supported clients.
func Clients() []Client {
	return []Client{NPM, Yarn, PNPM}
}

// ParseClient validates a client name.
func ParseClient(name string) (Client, error) {
	for _, c := range Clients() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown package manager %q", name).
		WithDetail("known", Clients())
}

// Args returns the command line arguments that install packages.
func (c Client) Args(packages []string, dev bool) []string {
	var args []string
	switch c {
	case Yarn:
		args = []string{"add"}
		if dev {
			args = append(args, "--dev")
		}
	case PNPM:
		args = []string{"add"}
		if dev {
			args = append(args, "--save-dev")
		}
	default:
		args = []string{"install"}
		if dev {
			args = append(args, "--save-dev")
		}
	}
	return append(args, packages...)
}
