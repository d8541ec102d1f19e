package qremis

import "github.com/reoring/qremis/i18n"

// Validate re-checks r and every record beneath it against their schema
// entries and returns Issues (nil when valid).
//
// Mutations do not re-check mandatory fields, so a record can become
// incomplete after Delete or DeleteAt; Validate reports such fields with
// CodeMissingMandatory at their JSON Pointer path.
func Validate(r *Record) error {
	if r == nil {
		return Issues{{Path: "/", Code: CodeTypeMismatch, Message: ErrNilRecord.Error()}}
	}
	v := &validator{seen: map[*Record]bool{}}
	v.walk(r, rootPath())
	if len(v.issues) == 0 {
		return nil
	}
	return v.issues
}

type validator struct {
	issues Issues
	seen   map[*Record]bool
}

func (v *validator) walk(r *Record, p pathRef) {
	// A record reachable from itself would recurse forever.
	if v.seen[r] {
		v.issues = append(v.issues, p.Issue(CodeCyclicSchema, i18n.T(CodeCyclicSchema, map[string]string{"path": p.Pointer()}), "type", string(r.Type())))
		return
	}
	v.seen[r] = true
	defer delete(v.seen, r)

	for _, f := range r.entry.Fields() {
		fp := p.Field(f.Name)
		if !r.fields.Has(f.Name) {
			if f.Mandatory {
				v.issues = append(v.issues, fp.Issue(CodeMissingMandatory, i18n.T(CodeMissingMandatory, map[string]string{"fields": f.Name}), "type", string(r.Type())))
			}
			continue
		}
		if f.Repeatable {
			seq, _ := r.fields.Seq(f.Name)
			for i, el := range seq {
				v.value(r, f.Name, el, fp.Index(i))
			}
			continue
		}
		el, _ := r.fields.Scalar(f.Name)
		v.value(r, f.Name, el, fp)
	}
}

func (v *validator) value(parent *Record, field string, el any, p pathRef) {
	f, _ := parent.entry.Field(field)
	if err := parent.check(f, el); err != nil {
		tm := err.(*TypeMismatchError)
		msg := i18n.T(CodeTypeMismatch, map[string]string{"expected": tm.Expected, "actual": tm.Actual})
		v.issues = append(v.issues, p.Issue(CodeTypeMismatch, msg, "expected", tm.Expected, "actual", tm.Actual))
		return
	}
	if c, ok := el.(*Record); ok {
		v.walk(c, p)
	}
}
