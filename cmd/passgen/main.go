package main

import (
	"fmt"
	"io"
	"os"

	"github.com/passforge/passforge-go/internal/crypto"
)

type example struct {
	label string
	opts  crypto.GeneratorOptions
}

func examples() []example {
	long := crypto.DefaultOptions()
	long.Length = 16
	long.MinOfEach = 2

	letters := crypto.DefaultOptions()
	letters.Length = 10
	letters.Numbers = false
	letters.Symbols = false
	letters.MinOfEach = 2

	return []example{
		{"Default password (12 chars, all types)", crypto.DefaultOptions()},
		{"Longer password (16 chars, min 2 of each)", long},
		{"Letters-only password (10 chars)", letters},
	}
}

func run(w io.Writer, src crypto.Source) error {
	for _, ex := range examples() {
		password, err := crypto.Generate(src, ex.opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", ex.label, password)
	}
	return nil
}

func main() {
	if err := run(os.Stdout, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
