package keys

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/sf-git-merge-driver/ir"
)

// Extractor derives the identity of one record of a repeated element.
type Extractor interface {
	Key(record *ir.Node) (string, error)
}

// Spec is the data form of an extractor. The identity is the text of
// Fields joined by Sep; the first field is required and later ones are
// skipped when absent. With OwnKeys set the identity is instead the
// record's sorted field names, for records told apart by shape.
type Spec struct {
	Fields  []string
	Sep     string
	OwnKeys bool
}

// Field is the common single field extractor.
func Field(name string) Spec {
	return Spec{Fields: []string{name}}
}

// Joined combines several fields, "layout" "." "recordType".
func Joined(sep string, fields ...string) Spec {
	return Spec{Fields: fields, Sep: sep}
}

func (s Spec) Key(record *ir.Node) (string, error) {
	if record == nil {
		return "", ErrNoKey
	}
	if record.IsScalar() {
		return record.Text(), nil
	}
	if record.Type != ir.ObjectType {
		return "", fmt.Errorf("%w: %s record", ErrNoKey, record.Type)
	}
	if s.OwnKeys {
		fields := slices.Clone(record.Fields)
		slices.Sort(fields)
		sep := s.Sep
		if sep == "" {
			sep = ","
		}
		return strings.Join(fields, sep), nil
	}
	parts := make([]string, 0, len(s.Fields))
	for i, f := range s.Fields {
		v := ir.Get(record, f)
		if v == nil || !v.IsScalar() {
			if i == 0 {
				return "", fmt.Errorf("%w: missing %q", ErrNoKey, f)
			}
			continue
		}
		parts = append(parts, v.Text())
	}
	return strings.Join(parts, s.Sep), nil
}
