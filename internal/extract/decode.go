package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrUndecodable is returned when a page is not valid UTF-8 and declares no
// other character set.
var ErrUndecodable = errors.New("not valid UTF-8 and no charset declared")

// Decode returns page markup as UTF-8. Valid UTF-8 passes through untouched.
// Otherwise the forced charset is used when set, else a charset declared by a
// byte order mark or <meta> tag.
func Decode(raw []byte, forced string) ([]byte, error) {
	if utf8.Valid(raw) {
		return raw, nil
	}
	if name := strings.TrimSpace(forced); name != "" {
		enc, err := htmlindex.Get(name)
		if err != nil {
			return nil, fmt.Errorf("charset %q: %w", name, err)
		}
		out, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return out, nil
	}
	enc, name, certain := charset.DetermineEncoding(raw, "text/html")
	// windows-1252 without certainty is the detector's fallback, not a declaration
	if name == "utf-8" || (name == "windows-1252" && !certain) {
		return nil, ErrUndecodable
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, nil
}
