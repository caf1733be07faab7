// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Command rasttest is the renderer's CLI test harness (§6): it takes
// a suite name, a case name, and case-specific positional arguments,
// runs the case, and exits 0 on success or non-zero on failure.
package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	flag.Usage = func() {
		log.Printf("usage: rasttest <suite> <case> [args...]")
		for suite, cases := range suites {
			for name := range cases {
				log.Printf("  %s %s", suite, name)
			}
		}
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}
	suite, name, rest := args[0], args[1], args[2:]

	cases, ok := suites[suite]
	if !ok {
		log.Printf("rasttest: unknown suite %q", suite)
		os.Exit(2)
	}
	run, ok := cases[name]
	if !ok {
		log.Printf("rasttest: unknown case %q in suite %q", name, suite)
		os.Exit(2)
	}

	if err := run(rest); err != nil {
		log.Printf("FAIL %s/%s: %v", suite, name, err)
		os.Exit(1)
	}
	log.Printf("PASS %s/%s", suite, name)
}
