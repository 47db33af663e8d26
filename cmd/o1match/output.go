package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/o1-match/internal/schemas"
)

// writeOutput prints doc as indented JSON to stdout, or writes it to outPath and checks the
// file against schemaFile. Schema problems are logged as warnings and never fail the command.
func (c *cli) writeOutput(doc any, outPath, schemaFile string) error {
	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if outPath == "" {
		_, err := fmt.Fprintln(c.out, string(jsonBytes))
		return err
	}

	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	c.logger.Info("wrote output", zap.String("path", outPath))

	schemaPath := schemas.ResolveSchemaPath(schemaFile)
	if schemaPath == "" {
		c.logger.Debug("schema not found, skipping validation", zap.String("schema", schemaFile))
		return nil
	}
	if err := schemas.ValidateJSON(schemaPath, outPath); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			c.logger.Warn("output does not validate against schema",
				zap.String("schema", schemaPath), zap.Int("errors", len(validationErr.Errors)), zap.Error(err))
		} else {
			c.logger.Warn("could not validate output against schema", zap.String("schema", schemaPath), zap.Error(err))
		}
	}
	return nil
}
