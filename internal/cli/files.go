package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/internal/library"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate an item file",
		Long: `Check loads every item in a YAML item file into an empty catalog and
reports the items that fail validation or duplicate an earlier item.
Exits with status 1 if any item is rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, records, err := a.loadFile(args[0])
			if catalog == nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d of %d items accepted\n", catalog.Count(), records)
			if err != nil {
				a.palette.err.Fprintln(out, err)
				return &exitError{code: exitUserError}
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var (
		kindName string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "Print the items of an item file",
		Long: `List loads a YAML item file and prints the inventory report, or only the
items of one kind with --kind. Rejected items are reported on stderr.

Example:
  shelf list items.yaml
  shelf list items.yaml --kind magazine
  shelf list items.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind types.Kind
			if kindName != "" {
				k, err := types.ParseKind(kindName)
				if err != nil {
					return &exitError{code: exitUserError, err: err}
				}
				kind = k
			}

			catalog, _, err := a.loadFile(args[0])
			if catalog == nil {
				return err
			}
			if err != nil {
				a.palette.warn.Fprintln(cmd.ErrOrStderr(), err)
			}

			items := catalog.Items()
			if kind != "" {
				items = catalog.ItemsOfKind(kind)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				records := make([]types.Record, len(items))
				for i, item := range items {
					records[i] = types.RecordOf(item)
				}
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return &exitError{code: exitSysError, err: fmt.Errorf("marshal items: %w", err)}
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprint(out, library.FormatReport(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "", "only list items of this kind (book, magazine)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

// loadFile reads the item file at path into a new catalog. It returns the
// catalog, the number of records in the file, and any rejection error. A nil
// catalog means the file itself could not be read.
func (a *app) loadFile(path string) (*library.Catalog, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, &exitError{code: exitUserError, err: fmt.Errorf("item file %s not found", path)}
		}
		return nil, 0, &exitError{code: exitSysError, err: fmt.Errorf("open item file: %w", err)}
	}
	defer f.Close()

	records, err := library.LoadRecords(f)
	if err != nil {
		return nil, 0, &exitError{code: exitUserError, err: fmt.Errorf("%s: %w", path, err)}
	}

	catalog := a.newCatalog()
	_, err = catalog.AddRecords(records)
	return catalog, len(records), err
}
