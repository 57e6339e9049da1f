package main

import (
	"context"
	"os"
)

// unbase decodes ghana_voice_ledger_base64.txt into GhanaVoiceLedger.zip in
// the working directory.
func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr))
}
