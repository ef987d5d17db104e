package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/smartjob/internal/schemas"
)

// readSnapshot validates the JSON file at path against the named schema and
// decodes it into v. Schema load problems are reported as warnings; a
// document that fails validation is an error.
func readSnapshot(cmd *cobra.Command, schema, path string, v any) error {
	if err := schemas.ValidateFile(schema, path); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		switch {
		case errors.As(err, &validationErr):
			return fmt.Errorf("%s is not a valid %s file: %w", path, schema, err)
		case errors.As(err, &schemaLoadErr):
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not validate %s: %v\n", path, err)
		default:
			return err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// writeOutput writes v as indented JSON to out, or to stdout when out is empty.
func writeOutput(cmd *cobra.Command, out string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if out == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(out); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", out, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully wrote %s\n", out)
	return nil
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
