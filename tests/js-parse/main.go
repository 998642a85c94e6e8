//go:build gofuzz
// +build gofuzz

package fuzz

import (
	"encoding/json"

	"github.com/tdewolff/esparse/js"
)

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	o := js.Options{EcmaVersion: js.Latest, Locations: true}
	ast, err := js.Parse(data, o)
	if err != nil {
		if _, ok := err.(*js.SyntaxError); !ok {
			panic(err)
		}
		return 0
	}

	b, err := js.MarshalESTree(ast)
	if err != nil {
		panic(err)
	} else if !json.Valid(b) {
		panic("invalid ESTree JSON")
	}

	js.Walk(spanChecker{len(data)}, ast)
	return 1
}

type spanChecker struct {
	n int
}

func (c spanChecker) Enter(n js.INode) js.IVisitor {
	if base := n.Base(); base.Start < 0 || base.End < base.Start || c.n < base.End {
		panic("node span out of bounds")
	}
	return c
}

func (c spanChecker) Exit(n js.INode) {}
