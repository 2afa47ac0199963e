// Package contact holds the contact-form submission, its validation rules,
// and the ways a submission leaves the machine.
package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Submission is what the form sends.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
}

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldSubject Field = "subject"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
)

// Fields lists the inputs in the order the form presents them.
var Fields = []Field{FieldName, FieldSubject, FieldEmail, FieldPhone}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(?:\d{10}|\+\d{11,12})$`)
)

// Value returns the submission's value for f.
func (s Submission) Value(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldSubject:
		return s.Subject
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	}
	return ""
}

// Set stores v under f.
func (s *Submission) Set(f Field, v string) {
	switch f {
	case FieldName:
		s.Name = v
	case FieldSubject:
		s.Subject = v
	case FieldEmail:
		s.Email = v
	case FieldPhone:
		s.Phone = v
	}
}

// FieldErrors maps each invalid field to its message.
type FieldErrors map[Field]string

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, f := range Fields {
		if msg, ok := e[f]; ok {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field. It returns nil when the submission is valid.
func Validate(s Submission) FieldErrors {
	errs := FieldErrors{}
	for _, f := range Fields {
		v := strings.TrimSpace(s.Value(f))
		if v == "" {
			errs[f] = upperFirst(string(f)) + " is required"
			continue
		}
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(v) {
				errs[f] = "Please enter a valid email"
			}
		case FieldPhone:
			if !phonePattern.MatchString(v) {
				errs[f] = "Please enter a valid phone number"
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
