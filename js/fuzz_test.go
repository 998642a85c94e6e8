package js

import (
	"encoding/json"
	"testing"
)

type spanChecker struct {
	t *testing.T
	n int
}

func (c spanChecker) Enter(n INode) IVisitor {
	if base := n.Base(); base.Start < 0 || base.End < base.Start || c.n < base.End {
		c.t.Fatalf("span %d-%d of %T out of bounds", base.Start, base.End, n)
	}
	return c
}

func (c spanChecker) Exit(n INode) {}

func FuzzParse(f *testing.F) {
	f.Add([]byte("var a = 1, b = 'c'; function d(e, ...f) { return e ? f : `g${h}i`; }"))
	f.Add([]byte("class A extends B { static #x = 1; async *m() { yield await this.#x; } }"))
	f.Add([]byte("for (const [k, v] of o) { label: if (k in v) break label; }"))
	f.Add([]byte("x = a?.b ?? c ** -d; y = /re[/]/gu; z = 0x1Fn"))
	f.Add([]byte("({a, b: [c = 1], ...d} = e)"))
	f.Add([]byte("a\n++b\n(c)"))
	f.Fuzz(func(t *testing.T, data []byte) {
		ast, err := Parse(data, Options{EcmaVersion: Latest, Locations: true})
		if err != nil {
			if _, ok := err.(*SyntaxError); !ok {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}

		b, err := MarshalESTree(ast)
		if err != nil {
			t.Fatal(err)
		} else if !json.Valid(b) {
			t.Fatal("invalid ESTree JSON")
		}
		Walk(spanChecker{t, len(data)}, ast)
	})
}
