// File: gen/regex.go
package gen

import (
	"fmt"
	"regexp/syntax"
	"strings"
)

// Regex generates strings matching pattern, walking the pattern's
// parsed syntax tree (regexp/syntax — no generation library exists
// in this module's dependency set, so the standard library's own
// regex parser is the grounding for this leaf; see DESIGN.md) rather
// than accepting or rejecting random strings. Anchors and flags not
// needed for matching are ignored; supported operators are literals,
// concatenation, alternation, capture groups, character classes,
// "any character", and the repetition operators (*, +, ?, {m,n}).
//
// A pattern that regexp/syntax cannot parse (backreferences included,
// since RE2 syntax has no representation for them) makes Regex panic
// when it is called. A parsed operator outside the supported set makes
// Generate panic with that operator, since there is no value it could
// return.
func Regex(pattern string) Generator[string] {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		panic(fmt.Sprintf("gen.Regex: %v", err))
	}
	re = re.Simplify()
	return From(func(st State) Sample[string] {
		node := genRegexNode(re, st)
		tree := mapTree(regexTree(node), (*regexNode).text)
		return Sample[string]{Value: node.text(), Tree: tree}
	})
}

// regexNode is an intermediate tree mirroring the matched structure,
// so shrinking can narrow repetitions and alternation choices while
// staying within the language the pattern describes.
type regexNode struct {
	op       syntax.Op
	literal  string
	children []*regexNode
	// for OpStar/OpPlus/OpRepeat: the minimum repeat count allowed.
	min int
}

func (n *regexNode) text() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(n.literal)
	for _, c := range n.children {
		b.WriteString(c.text())
	}
	return b.String()
}

func genRegexNode(re *syntax.Regexp, st State) *regexNode {
	switch re.Op {
	case syntax.OpLiteral:
		return &regexNode{op: re.Op, literal: string(re.Rune)}

	case syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText, syntax.OpWordBoundary,
		syntax.OpNoWordBoundary:
		return &regexNode{op: re.Op}

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		r := st.Rand()
		c := rune('a' + r.Intn(26))
		return &regexNode{op: re.Op, literal: string(c)}

	case syntax.OpCharClass:
		r := st.Rand()
		c := pickCharClassRune(re.Rune, r.Int63n)
		return &regexNode{op: re.Op, literal: string(c)}

	case syntax.OpCapture:
		return genRegexNode(re.Sub[0], st)

	case syntax.OpConcat:
		kids := make([]*regexNode, len(re.Sub))
		for i, s := range re.Sub {
			kids[i] = genRegexNode(s, st.Split(int64(i)))
		}
		return &regexNode{op: re.Op, children: kids}

	case syntax.OpAlternate:
		idx := st.Rand().Intn(len(re.Sub))
		chosen := genRegexNode(re.Sub[idx], st.Split(int64(idx)))
		return &regexNode{op: re.Op, children: []*regexNode{chosen}}

	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
		min, max := repeatBounds(re)
		r := st.Rand()
		n := min
		if max > min {
			n += r.Intn(max - min + 1)
		}
		kids := make([]*regexNode, n)
		for i := 0; i < n; i++ {
			kids[i] = genRegexNode(re.Sub[0], st.Split(int64(i)))
		}
		return &regexNode{op: re.Op, children: kids, min: min}

	default:
		panic(fmt.Sprintf("gen.Regex: unsupported pattern construct %v", re.Op))
	}
}

func repeatBounds(re *syntax.Regexp) (min, max int) {
	switch re.Op {
	case syntax.OpStar:
		return 0, 6
	case syntax.OpPlus:
		return 1, 6
	case syntax.OpQuest:
		return 0, 1
	case syntax.OpRepeat:
		lo, hi := re.Min, re.Max
		if hi < 0 || hi > lo+6 {
			hi = lo + 6
		}
		return lo, hi
	}
	return 0, 0
}

func pickCharClassRune(ranges []rune, int63n func(int64) int64) rune {
	var total int64
	for i := 0; i+1 < len(ranges); i += 2 {
		total += int64(ranges[i+1]-ranges[i]) + 1
	}
	if total <= 0 {
		return ranges[0]
	}
	target := int63n(total)
	for i := 0; i+1 < len(ranges); i += 2 {
		span := int64(ranges[i+1]-ranges[i]) + 1
		if target < span {
			return ranges[i] + rune(target)
		}
		target -= span
	}
	return ranges[0]
}

// regexTree produces shrink children that stay within the pattern's
// language: fewer repetitions for star/plus/repeat nodes, and
// recursive shrinking of concat's children left to right. Alternation
// choices and optional (?) parts are not shrunk, and the elements
// inside a repetition keep their generated text.
func regexTree(n *regexNode) ShrinkTree[*regexNode] {
	return NewTree(n, func() []ShrinkTree[*regexNode] {
		return regexChildren(n)
	})
}

func regexChildren(n *regexNode) []ShrinkTree[*regexNode] {
	var out []ShrinkTree[*regexNode]
	switch n.op {
	case syntax.OpStar, syntax.OpPlus, syntax.OpRepeat:
		for k := len(n.children) - 1; k >= n.min; k-- {
			cp := &regexNode{op: n.op, children: append([]*regexNode{}, n.children[:k]...), min: n.min}
			out = append(out, regexTree(cp))
		}
	case syntax.OpConcat:
		for i, c := range n.children {
			for _, cc := range regexChildren(c) {
				kids := append([]*regexNode{}, n.children...)
				kids[i] = cc.Value
				out = append(out, regexTree(&regexNode{op: n.op, children: kids}))
			}
		}
	}
	return out
}

