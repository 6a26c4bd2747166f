// File: gen/string.go
package gen

import "unicode/utf8"

// Alphabet shorthands (pure ASCII, to keep generated strings
// predictable across locales).
const (
	AlphabetLower    = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha    = AlphabetLower + AlphabetUpper
	AlphabetDigits   = "0123456789"
	AlphabetAlphaNum = AlphabetAlpha + AlphabetDigits
	AlphabetASCII    = AlphabetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~"
)

// String generates strings over alphabet with a length in [minLen,
// maxLen], the reachable length growing with state size the same way
// Collection does. An empty alphabet defaults to AlphabetAlphaNum.
//
// The shrink tree truncates before it simplifies (§4.1): first
// children are prefixes down to minLen, then per-position
// substitutions of a character towards alphabet's first rune, tried
// right-to-left so suffixes stabilize first.
func String(alphabet string, minLen, maxLen int) Generator[string] {
	if alphabet == "" {
		alphabet = AlphabetAlphaNum
	}
	if minLen < 0 {
		minLen = 0
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	runes := []rune(alphabet)
	return From(func(st State) Sample[string] {
		r := st.Rand()
		top := minLen + int(st.Size.Clamp()*Size(maxLen-minLen))
		if top > maxLen {
			top = maxLen
		}
		n := minLen
		if top > minLen {
			n += r.Intn(top - minLen + 1)
		}
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = runes[r.Intn(len(runes))]
		}
		v := string(rs)
		return Sample[string]{Value: v, Tree: stringTree(v, runes, minLen)}
	})
}

func stringTree(v string, alphabet []rune, minLen int) ShrinkTree[string] {
	return NewTree(v, func() []ShrinkTree[string] {
		rs := []rune(v)
		seen := map[string]struct{}{v: {}}
		var out []ShrinkTree[string]
		push := func(s string) {
			if _, ok := seen[s]; ok {
				return
			}
			seen[s] = struct{}{}
			out = append(out, stringTree(s, alphabet, minLen))
		}
		for n := len(rs) - 1; n >= minLen; n-- {
			push(string(rs[:n]))
		}
		if len(rs) > 0 && len(alphabet) > 0 {
			target := alphabet[0]
			for i := len(rs) - 1; i >= 0; i-- {
				if rs[i] == target {
					continue
				}
				cand := make([]rune, len(rs))
				copy(cand, rs)
				cand[i] = target
				if s := string(cand); utf8.ValidString(s) {
					push(s)
				}
			}
		}
		return out
	})
}

// StringAlpha, StringAlphaNum, StringDigits and StringASCII are
// convenience wrappers over the common alphabets.
func StringAlpha(minLen, maxLen int) Generator[string] { return String(AlphabetAlpha, minLen, maxLen) }
func StringAlphaNum(minLen, maxLen int) Generator[string] {
	return String(AlphabetAlphaNum, minLen, maxLen)
}
func StringDigits(minLen, maxLen int) Generator[string] { return String(AlphabetDigits, minLen, maxLen) }
func StringASCII(minLen, maxLen int) Generator[string]  { return String(AlphabetASCII, minLen, maxLen) }
