package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "gen":
		genCmd := flag.NewFlagSet("gen", flag.ExitOnError)
		configPath := genCmd.String("config", "", "Path to workload config file")
		genCmd.Parse(os.Args[2:])
		if *configPath == "" {
			fmt.Println("Error: --config is required for 'gen'")
			genCmd.Usage()
			os.Exit(1)
		}
		fmt.Printf("Running 'gen' with config: %s\n", *configPath)
		Gen(*configPath)

	case "load":
		loadCmd := flag.NewFlagSet("load", flag.ExitOnError)
		configPath := loadCmd.String("config", "", "Path to workload config file")
		loadCmd.Parse(os.Args[2:])
		if *configPath == "" {
			fmt.Println("Error: --config is required for 'load'")
			loadCmd.Usage()
			os.Exit(1)
		}
		fmt.Printf("Running 'load' with config: %s\n", *configPath)
		Load(*configPath)

	case "help", "--help", "-h":
		printHelp()
	default:
		fmt.Printf("Unknown subcommand: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`Usage: ocgen <subcommand> --config <path>`)
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  gen     --config <path>   Generate a random value fixture set to a typed-JSON file")
	fmt.Println("  load    --config <path>   Generate fixtures and upsert them into a SQL store")
	fmt.Println("  help                      Show this help message")
}
