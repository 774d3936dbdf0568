package vnpay

import (
	"net/url"
	"sort"
	"strings"
)

// Canonicalize builds the exact byte string that is signed: the signature
// fields removed, the rest sorted by name in byte order and joined as
// name=value with '&'. Names and values are form-encoded.
func Canonicalize(pairs []Pair) string {
	filtered := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if isSignatureField(p.Key) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Key < filtered[j].Key
	})

	var b strings.Builder
	for i, p := range filtered {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

func isSignatureField(key string) bool {
	return key == ParamSecureHash || key == ParamSecureHashType
}
