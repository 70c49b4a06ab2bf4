// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program ljsonfmt parses a JSON document under a chosen leniency policy
// and prints it back out as compact JSON, reporting any errors found
// along the way.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/creachadair/ljson"
)

var (
	strict     = flag.Bool("strict", false, "Use strict (RFC 8259) parsing instead of the lenient default")
	failOnWarn = flag.Bool("fail-on-warn", false, "Exit with a nonzero status if any error was reported, even if recovered")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("Usage: ljsonfmt <path>")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Reading input: %v", err)
	}

	cfg := ljson.DefaultConfig()
	if *strict {
		cfg = ljson.StrictConfig()
	}

	root, errs, ok := ljson.Parse(data, cfg)
	if len(errs) != 0 {
		fmt.Fprint(os.Stderr, ljson.FormatErrors(errs))
	}
	if !ok && *failOnWarn {
		os.Exit(1)
	}

	fmt.Println(root.String())
}
