package filesystem

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/types"
)

// Exists reports whether path exists on fsys. Errors other than "not exist"
// are returned as FILE_ACCESS.
func Exists(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
}
