package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/crypto-api/internal/jsonvalue"
)

// readInput parses the JSON document named by --file, or stdin.
func (a *cliApp) readInput(cmd *cobra.Command) (any, error) {
	var (
		data []byte
		err  error
	)

	if a.inputFile == "" || a.inputFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(a.inputFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	value, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("input is not valid JSON: %w", err)
	}
	return value, nil
}

// readObjectInput is readInput for commands that require a JSON object.
func (a *cliApp) readObjectInput(cmd *cobra.Command) (*jsonvalue.Object, error) {
	value, err := a.readInput(cmd)
	if err != nil {
		return nil, err
	}

	obj, ok := value.(*jsonvalue.Object)
	if !ok {
		return nil, fmt.Errorf("input must be a JSON object at the root, got %s", jsonvalue.TypeName(value))
	}
	return obj, nil
}

// writeJSON writes value to stdout followed by a newline.
func (a *cliApp) writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	if a.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(value)
}
