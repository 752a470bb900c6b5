// Command aitext sends a prompt to Gemini and prints the answer, either as
// plain text or, with --json, as a structured result decoded from the reply.
//
//	GEMINI_API_KEY=... aitext "Summarize the plot of Hamlet in one sentence"
//	aitext --json -o yaml "List three primary colors with their hex codes"
//
// The credential is read from GEMINI_API_KEY. A .env file in the working
// directory is loaded first.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := Execute(context.Background()); err != nil {
		// The failed result has already been printed.
		if !errors.Is(err, errResultNotOK) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
