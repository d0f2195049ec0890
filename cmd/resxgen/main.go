package main

import (
	"fmt"
	"github.com/google/gops/agent"
	"github.com/viant/resxgen/cmd"
	"log"
	"os"
)

var Version = "dev"

const diagEnvVariable = "RESXGEN_DIAG"

func main() {
	if os.Getenv(diagEnvVariable) != "" {
		go func() {
			if err := agent.Listen(agent.Options{}); err != nil {
				log.Fatal(err)
			}
		}()
	}

	err := cmd.RunApp(Version, os.Args[1:])
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		log.Fatal(err)
	}
}
