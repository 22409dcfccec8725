package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xiam/lispy/lexer"
	"github.com/xiam/lispy/parser"
)

var rootCmd = &cobra.Command{
	Use:           "lispy",
	Short:         "Tokenizer and parser for a limited subset of clojure",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize FILE",
	Short: "Tokenize the file and print out the tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFile(args[0], printTokens)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse the file and print out the ASTs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFile(args[0], printExpressions)
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
}

func withFile(name string, fn func(io.Reader) error) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrapf(err, "opening %q", name)
	}
	defer f.Close()

	return fn(f)
}

// printTokens writes one token per line, indented by paren depth.
func printTokens(r io.Reader) error {
	lx := lexer.New(r)

	tabs := 0
	for {
		tok, err := lx.Next()
		if err != nil {
			return err
		}

		if tok.Is(lexer.TokenCloseParen) && tabs > 0 {
			tabs--
		}
		fmt.Printf("%s%v\n", strings.Repeat("\t", tabs), tok)
		if tok.Is(lexer.TokenOpenParen) {
			tabs++
		}

		if tok.Is(lexer.TokenEOF) {
			return nil
		}
	}
}

func printExpressions(r io.Reader) error {
	p := parser.New(lexer.New(r))

	for {
		node, err := p.NextExpression()
		if err != nil {
			return err
		}
		if node == nil {
			return nil
		}
		fmt.Println(node)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lispy: %v\n", err)
		os.Exit(1)
	}
}
