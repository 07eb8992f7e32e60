// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/hexacore/cpu"
	"github.com/ezrec/hexacore/emulator"
	"github.com/ezrec/hexacore/translate"
)

func main() {
	var table_file string
	var exit_on_halt bool
	var max_cycles int
	var input string
	var verbose bool
	var lang string

	flag.StringVar(&table_file, "t", "", "Opcode table (.json or .star)")
	flag.BoolVar(&exit_on_halt, "x", false, "Exit when the CPU halts (otherwise wait for an interrupt)")
	flag.IntVar(&max_cycles, "n", 0, "Maximum cycles to run (0 for no limit)")
	flag.StringVar(&input, "i", "-", "Console input")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message locale (default from the environment)")

	flag.Parse()

	if len(lang) != 0 {
		translate.SetLocale(lang)
	}

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected one ROM image, got: %v", os.Args[0], flag.Args())
	}
	rom_file := flag.Arg(0)

	config := emulator.DefaultConfig()
	config.Options.ExitOnHalt = exit_on_halt

	var table *cpu.Table
	if len(table_file) != 0 {
		inf, err := os.Open(table_file)
		if err != nil {
			log.Fatalf("%v: %v", table_file, err)
		}
		defer inf.Close()

		switch filepath.Ext(table_file) {
		case ".star":
			table, err = cpu.LoadTableStarlark(table_file, inf, emulator.Defines())
		default:
			table, err = cpu.LoadTable(inf)
		}
		if err != nil {
			log.Fatalf("%v: %v", table_file, err)
		}
	}

	emu := emulator.New(config, table)
	emu.Verbose = verbose
	emu.SetOutput(os.Stdout)

	if input == "-" {
		emu.SetInput(os.Stdin)
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.SetInput(inf)
	}

	inf, err := os.Open(rom_file)
	if err != nil {
		log.Fatalf("%v: %v", rom_file, err)
	}
	err = emu.LoadFrom(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", rom_file, err)
	}

	emu.Reset()
	cycles, err := emu.Run(max_cycles)
	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		log.Printf("%v: %d cycles, %v", rom_file, cycles, emu.Status)
	}
}
