package gltfdoc

import (
	"errors"
	"fmt"
	"strings"
)

// Decode error codes. A decode aborts on the first of these.
const (
	CodeSyntaxError          = "syntax_error"
	CodeMissingRequiredField = "missing_required_field"
	CodeTypeMismatch         = "type_mismatch"
	CodeUnknownEnumValue     = "unknown_enum_value"
	CodeInvalidIndex         = "invalid_index"
)

// Validation finding codes. Findings accumulate and never abort.
const (
	CodeIndexOutOfRange                  = "index_out_of_range"
	CodeConstraintViolation              = "constraint_violation"
	CodeInconsistentExtensionDeclaration = "inconsistent_extension_declaration"
)

var (
	// ErrIndexOutOfRange is wrapped by the Document accessors when an Index
	// does not dereference within its target array.
	ErrIndexOutOfRange = errors.New("gltfdoc: index out of range")

	errTrailingData     = errors.New("unexpected data after top-level value")
	errInvalidValueKind = errors.New("invalid value kind")
)

// FieldError is the structural decode failure: one offending field, addressed
// by a dotted path such as meshes[2].primitives[0].attributes.POSITION.
type FieldError struct {
	Path    string // empty for document-level syntax errors
	Code    string // one of the decode codes above
	Message string
	Offset  int64 // byte offset in the input when known, -1 otherwise
	Cause   error // optional underlying error
}

func (e *FieldError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("gltfdoc: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("gltfdoc: %s at %s: %s", e.Code, e.Path, e.Message)
}

func (e *FieldError) Unwrap() error { return e.Cause }

// AsFieldError extracts a *FieldError from err using errors.As.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func syntaxError(cause error, offset int64) *FieldError {
	return &FieldError{
		Code:    CodeSyntaxError,
		Message: cause.Error(),
		Offset:  offset,
		Cause:   cause,
	}
}

func fieldErrf(path, code string, format string, args ...any) *FieldError {
	return &FieldError{Path: path, Code: code, Message: fmt.Sprintf(format, args...), Offset: -1}
}

// prefixFieldError extends the path of a nested FieldError with the field it
// was produced under. Used on the encode walk, where errors bubble outward.
func prefixFieldError(err error, base string) error {
	fe, ok := AsFieldError(err)
	if !ok || base == "" {
		return err
	}
	if fe.Path == "" {
		fe.Path = base
	} else if fe.Path[0] == '[' {
		fe.Path = base + fe.Path
	} else {
		fe.Path = base + "." + fe.Path
	}
	return fe
}

// Severity grades a validation finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Finding is one validation result entry.
type Finding struct {
	Path     string
	Severity Severity
	Code     string // one of the finding codes above
	Message  string
}

// Findings is the ordered result of a validation pass. It implements error so
// callers that want strict handling can return it directly.
type Findings []Finding

// Error summarizes the first few findings.
func (fs Findings) Error() string {
	if len(fs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(fs)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", fs[i].Code, fs[i].Path)
	}
	if n := len(fs); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Err returns fs as an error, or nil when there are no findings.
func (fs Findings) Err() error {
	if len(fs) == 0 {
		return nil
	}
	return fs
}

// HasErrors reports whether any finding has error severity.
func (fs Findings) HasErrors() bool {
	for _, f := range fs {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// AsFindings extracts Findings from an error using errors.As.
func AsFindings(err error) (Findings, bool) {
	if err == nil {
		return nil, false
	}
	var fs Findings
	if errors.As(err, &fs) {
		return fs, true
	}
	return nil, false
}

func appendFinding(dst Findings, path string, sev Severity, code, format string, args ...any) Findings {
	return append(dst, Finding{
		Path:     path,
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	})
}
