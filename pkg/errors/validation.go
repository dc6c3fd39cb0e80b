package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateElementName validates that name can be used verbatim as an XML
// element name without escaping. Custom data keys are written as element
// names, so they are checked with this function when they are stored.
//
// The validation rules follow the XML NCName production, kept conservative:
//   - No empty names
//   - Maximum length of 256 characters
//   - First character is a letter or underscore
//   - Remaining characters are letters, digits, '_', '-' or '.'
//   - No colon (namespace prefixes are not supported)
//   - No names starting with "xml" in any letter case (reserved)
func ValidateElementName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidKey, "element name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidKey, "element name too long (max 256 characters)")
	}

	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return New(ErrCodeInvalidKey, "element name %q must start with a letter or underscore", name)
			}
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case '_', '-', '.':
			continue
		}
		return New(ErrCodeInvalidKey, "element name %q contains invalid character %q", name, r)
	}

	if len(name) >= 3 && strings.EqualFold(name[:3], "xml") {
		return New(ErrCodeInvalidKey, "element name %q uses the reserved xml prefix", name)
	}

	return nil
}

// ValidateObjectKey validates an object storage key for safety.
// It prevents path traversal and ensures reasonable key length.
//
// Validation rules:
//   - Key cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
//   - No leading slash
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateObjectKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "object key cannot be empty")
	}

	const maxKeyLength = 1024
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidInput, "object key too long (max %d characters)", maxKeyLength)
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "object key contains invalid characters")
		}
	}

	if strings.HasPrefix(key, "/") {
		return New(ErrCodeInvalidInput, "object key must be relative (cannot start with /)")
	}

	if strings.Contains(key, "..") {
		return New(ErrCodeInvalidInput, "object key cannot contain path traversal sequences (..)")
	}

	if strings.Contains(key, "\\") {
		return New(ErrCodeInvalidInput, "object key cannot contain backslashes")
	}

	return nil
}

// ValidateXMLText validates that value can be written as XML 1.0 character
// data unchanged. XML writers replace characters outside the XML Char
// production (most C0 controls, lone surrogates, U+FFFE, U+FFFF) and invalid
// UTF-8, so such values are rejected instead. field names the value in the
// error message.
func ValidateXMLText(field, value string) error {
	for i := 0; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		if r == utf8.RuneError && size <= 1 {
			return New(ErrCodeInvalidInput, "%s contains invalid UTF-8 at byte %d", field, i)
		}
		if !isXMLChar(r) {
			return New(ErrCodeInvalidInput, "%s contains character %U which XML cannot represent", field, r)
		}
		i += size
	}
	return nil
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= utf8.MaxRune:
		return true
	}
	return false
}
