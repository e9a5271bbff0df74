/*
File: rlox/main.go
*/

// Command demo parses a handful of sample expressions and prints their
// parenthesized form against a few hardcoded sources.
package main

import (
	"fmt"

	"github.com/akashmaji946/rlox/ast"
	"github.com/akashmaji946/rlox/parser"
	"github.com/akashmaji946/rlox/scanner"
)

func printExpr(src string) {
	tokens, err := scanner.New(src).ScanTokens()
	if err != nil {
		fmt.Printf("%s => scan error: %v\n", src, err)
		return
	}

	p := parser.New(tokens)
	statements := p.Parse()
	if p.HasErrors() {
		for _, parseErr := range p.Errors() {
			fmt.Printf("%s => parse error: %v\n", src, parseErr)
		}
		return
	}

	exprStmt := statements[0].(*ast.Expression)
	fmt.Printf("%s => %s\n", src, ast.Print(exprStmt.Inner))
}

func main() {
	fmt.Println("rlox ast printer demo")

	// binary expression
	printExpr("1 + 2 * 3;")

	// unary expression
	printExpr("!!true;")

	// parenthesized expression
	printExpr("4 - (1 + 2) + 2 + 3 * 4 / 2;")

	// parenthesized expression, different grouping
	printExpr("4 - (1 + 2) + (2 + 3) * 4 / 2;")

	// variables and assignment
	printExpr("a = b = 5;")
}
