package main

import (
	"flag"
	"fmt"
	"os"
)

func usage() {
	fmt.Fprintf(os.Stderr, `minireduce runs MapReduce jobs over line-oriented text files.

Usage:

  minireduce <command> [flags]

Commands:

  run        execute a job over an input file
  executors  list the available executors
  history    list recorded runs
  results    print the stored results of a run

Run "minireduce <command> -h" for details on a command.
`)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "run":
		runCmd(args[1:])
	case "executors":
		executorsCmd(args[1:])
	case "history":
		historyCmd(args[1:])
	case "results":
		resultsCmd(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		usage()
		os.Exit(2)
	}
}
