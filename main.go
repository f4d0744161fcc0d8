package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kr/pretty"

	"go.creack.net/goexpr/lexer"
	"go.creack.net/goexpr/parser"
)

func run(input string) error {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}
	for _, tok := range tokens {
		fmt.Println(tok)
	}

	node, err := parser.Parse(tokens)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	pretty.Println(node)
	fmt.Println(node.Dump())
	return nil
}

func main() {
	if len(os.Args) > 1 {
		if err := run(strings.Join(os.Args[1:], " ")); err != nil {
			log.Fatalf("Fail: %s.", err)
		}
		return
	}

	// No argument, read one expression per line from stdin.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := run(scanner.Text()); err != nil {
			log.Printf("Fail: %s.", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Fail: %s.", err)
	}
}
