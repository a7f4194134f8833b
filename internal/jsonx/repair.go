package jsonx

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cardscan/internal/domain"
)

// RepairError reports a payload that stayed unparseable after truncation
// repair. ResponseLen lets callers tell truncation from schema violations.
type RepairError struct {
	Err         error
	ResponseLen int
}

func (e *RepairError) Error() string {
	return fmt.Sprintf("model response unparseable after repair (response length %d): %v", e.ResponseLen, e.Err)
}

func (e *RepairError) Unwrap() error {
	return domain.ErrMalformedResponse
}

// Repair returns a parseable version of s. When the strict parse fails with
// an unexpected-end error, unmatched [ and { are counted and the missing
// closers appended, brackets before braces, then the parse is retried once.
// Any other failure, or a failed retry, yields a *RepairError. Repair never
// introduces keys the original text did not carry.
func Repair(s string) (string, error) {
	var v interface{}
	err := json.Unmarshal([]byte(s), &v)
	if err == nil {
		return s, nil
	}
	if !isUnexpectedEnd(err) {
		return "", &RepairError{Err: err, ResponseLen: len(s)}
	}
	repaired := closeUnbalanced(s)
	if repaired == s {
		return "", &RepairError{Err: err, ResponseLen: len(s)}
	}
	if err2 := json.Unmarshal([]byte(repaired), &v); err2 != nil {
		return "", &RepairError{Err: err2, ResponseLen: len(s)}
	}
	return repaired, nil
}

// Decode repairs s if needed and unmarshals it into v.
func Decode(s string, v interface{}) error {
	repaired, err := Repair(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return &RepairError{Err: err, ResponseLen: len(s)}
	}
	return nil
}

// closeUnbalanced appends the closing characters a truncated JSON text is
// missing: all unmatched ']' first, then unmatched '}'. Brackets inside
// string literals are ignored.
func closeUnbalanced(s string) string {
	braces, brackets := 0, 0
	inString, escaped := false, false
	for _, r := range s {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				braces++
			}
		case '}':
			if !inString {
				braces--
			}
		case '[':
			if !inString {
				brackets++
			}
		case ']':
			if !inString {
				brackets--
			}
		}
	}
	if braces <= 0 && brackets <= 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(s)
	for ; brackets > 0; brackets-- {
		b.WriteByte(']')
	}
	for ; braces > 0; braces-- {
		b.WriteByte('}')
	}
	return b.String()
}

func isUnexpectedEnd(err error) bool {
	var syn *json.SyntaxError
	return errors.As(err, &syn) && strings.Contains(syn.Error(), "unexpected end")
}
