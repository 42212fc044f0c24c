// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/fpgamat/driver/sim"
	"github.com/ezrec/fpgamat/job"
	"github.com/ezrec/fpgamat/session"
)

func main() {
	var jobFile string
	var verbose bool

	flag.StringVar(&jobFile, "j", "", ".star job file to use")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	jb := job.Default()
	if len(jobFile) != 0 {
		var err error
		jb, err = job.Load(jobFile, nil)
		if err != nil {
			log.Fatal(err)
		}
	}

	acc := sim.NewAccelerator()
	acc.Verbose = verbose

	s := &session.Session{
		Driver: acc,
		Job:    jb,
		Input:  os.Stdin,
		Output: os.Stdout,
	}

	err := s.Run()
	if err != nil {
		log.Print(err)
	}

	os.Exit(session.ExitCode(err))
}
