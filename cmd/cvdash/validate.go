package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"pkt.systems/cvdash"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [data.json]",
		Short: "Check a resume against the schema and report skipped fields",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, path, err := a.readRaw(cmd.Context(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0

			var schemaErr *cvdash.SchemaError
			if err := cvdash.ValidateSchema(raw); errors.As(err, &schemaErr) {
				for _, fe := range schemaErr.Errors {
					fmt.Fprintf(out, "schema: %s: %s\n", fe.Field, fe.Message)
				}
				failed += len(schemaErr.Errors)
			} else if err != nil {
				return err
			}

			doc, err := cvdash.Parse(raw, "")
			var verr *cvdash.ValidationError
			switch {
			case errors.As(err, &verr):
				for _, fe := range verr.Errors {
					fmt.Fprintf(out, "field: %s: %s\n", fe.Field, fe.Message)
				}
				failed += len(verr.Errors)
			case err != nil:
				return err
			default:
				for _, p := range doc.Problems() {
					fmt.Fprintf(out, "skipped: %s\n", p)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%s: %d problem(s)", path, failed)
			}
			fmt.Fprintf(out, "%s: ok\n", path)
			return nil
		},
	}
}
