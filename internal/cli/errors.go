package cli

import (
	"errors"
	"fmt"

	"github.com/dpavlic/logburst/internal/output"
)

// outputErrorCommon normalizes error emission across commands, respecting
// ndjson vs text formats so scripted consumers always get machine-readable
// failures.
func outputErrorCommon(globals *Globals, code, message string) error {
	if globals != nil && globals.Format == "ndjson" {
		output.NewNDJSONWriter(globals.Stdout).WriteError(code, message)
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}

// outputWarningCommon surfaces a non-fatal advisory without failing the run.
func outputWarningCommon(globals *Globals, message string) error {
	if globals == nil || globals.Quiet {
		return nil
	}
	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteWarning(message)
	}
	_, err := fmt.Fprintf(globals.Stderr, "Warning: %s\n", message)
	return err
}
