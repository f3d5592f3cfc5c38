package rest

import (
	"fmt"
	"path/filepath"

	"github.com/heartmarshall/vocabkit/internal/domain"
)

// dataDir confines client-supplied file names to the server's data
// directory. Names are checked lexically: absolute names and names that
// climb out through ".." are rejected.
type dataDir string

// resolve maps name to a path under d.
func (d dataDir) resolve(field, name string) (string, error) {
	p, fe := d.join(field, name)
	if fe != nil {
		return "", domain.NewValidationError(fe.Field, fe.Message)
	}
	return p, nil
}

// resolveAll maps every name, reporting each rejected one as field[i].
func (d dataDir) resolveAll(field string, names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	var errs []domain.FieldError
	for i, name := range names {
		p, fe := d.join(fmt.Sprintf("%s[%d]", field, i), name)
		if fe != nil {
			errs = append(errs, *fe)
			continue
		}
		out = append(out, p)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return out, nil
}

func (d dataDir) join(field, name string) (string, *domain.FieldError) {
	switch {
	case name == "":
		return "", &domain.FieldError{Field: field, Message: "is required"}
	case !filepath.IsLocal(name):
		return "", &domain.FieldError{Field: field, Message: "must be a relative path inside the data directory"}
	}
	return filepath.Join(string(d), name), nil
}

// name turns a resolved path back into the name the client sent.
func (d dataDir) name(path string) string {
	rel, err := filepath.Rel(string(d), path)
	if err != nil || !filepath.IsLocal(rel) {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

// failures reports per-file failures under client names.
func (d dataDir) failures(errs []domain.FileError) []fileFailure {
	out := toFailures(errs)
	for i := range out {
		out[i].Path = d.name(out[i].Path)
	}
	return out
}
