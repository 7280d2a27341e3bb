package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/internal/library"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Menu choices.
const (
	choiceAddBook      = "1"
	choiceAddMagazine  = "2"
	choiceViewAll      = "3"
	choiceViewBooks    = "4"
	choiceViewMagazine = "5"
	choiceExit         = "6"
)

const bannerRule = "================================================="

// menu drives the interactive catalog session. Errors from an action are
// reported and the loop continues; only closed input or the exit choice
// ends it.
type menu struct {
	catalog *library.Catalog
	prompt  *prompter
	out     io.Writer
	pal     palette
	logger  *slog.Logger
}

// runMenu seeds a fresh catalog if configured and runs the menu on the
// command's input and output.
func (a *app) runMenu(cmd *cobra.Command) error {
	catalog := a.newCatalog()

	if a.config.SeedFile != "" {
		if err := a.seed(catalog, a.config.SeedFile, cmd.ErrOrStderr()); err != nil {
			return &exitError{code: exitUserError, err: err}
		}
	}

	m := &menu{
		catalog: catalog,
		prompt:  newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), a.palette),
		out:     cmd.OutOrStdout(),
		pal:     a.palette,
		logger:  a.logger,
	}
	return m.run(cmd.Context())
}

// seed loads the item file at path into catalog. Rejected records are
// printed as warnings; an unreadable file is an error.
func (a *app) seed(catalog *library.Catalog, path string, warnings io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	records, err := library.LoadRecords(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	added, err := catalog.AddRecords(records)
	if err != nil {
		a.palette.warn.Fprintf(warnings, "Some seed items were skipped:\n%s\n", err)
	}
	a.logger.Info("seeded catalog", "file", path, "added", added, "records", len(records))
	return nil
}

func (m *menu) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.showOptions()
		choice, err := m.prompt.line("Select your option: ")
		if errors.Is(err, io.EOF) {
			m.farewell()
			return nil
		}
		if err != nil {
			return err
		}

		exit, err := m.dispatch(strings.TrimSpace(choice))
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			m.farewell()
			return nil
		}
		if exit {
			return nil
		}
		m.reportError(err)
		m.pal.muted.Fprintln(m.out, "\nReturning to menu...")
	}
}

func (m *menu) showOptions() {
	m.pal.banner.Fprintln(m.out, "\n"+bannerRule)
	m.pal.banner.Fprintln(m.out, "             LIBRARY MANAGEMENT SYSTEM")
	m.pal.banner.Fprintln(m.out, bannerRule)
	m.pal.option.Fprintln(m.out, choiceAddBook+". Add a Book")
	m.pal.option.Fprintln(m.out, choiceAddMagazine+". Add a Magazine")
	m.pal.option.Fprintln(m.out, choiceViewAll+". View All Library Items")
	m.pal.option.Fprintln(m.out, choiceViewBooks+". View Books")
	m.pal.option.Fprintln(m.out, choiceViewMagazine+". View Magazines")
	m.pal.option.Fprintln(m.out, choiceExit+". Exit Program")
}

// dispatch performs one menu choice and reports whether the session ends.
func (m *menu) dispatch(choice string) (bool, error) {
	switch choice {
	case choiceAddBook:
		b, err := m.readBook()
		if err != nil {
			return false, err
		}
		return false, m.add(b)
	case choiceAddMagazine:
		mag, err := m.readMagazine()
		if err != nil {
			return false, err
		}
		return false, m.add(mag)
	case choiceViewAll:
		m.pal.heading.Fprintln(m.out, "\n--- Library Items ---")
		return false, m.catalog.WriteReport(m.out)
	case choiceViewBooks:
		return false, m.showKind(types.KindBook)
	case choiceViewMagazine:
		return false, m.showKind(types.KindMagazine)
	case choiceExit:
		m.farewell()
		return true, nil
	default:
		m.pal.warn.Fprintf(m.out, "Invalid selection. Please choose between %s and %s.\n", choiceAddBook, choiceExit)
		return false, nil
	}
}

func (m *menu) add(item types.Item) error {
	if _, err := m.catalog.AddItem(item); err != nil {
		return err
	}
	m.pal.success.Fprintf(m.out, "%s has been added successfully.\n", item.Kind().Label())
	return nil
}

func (m *menu) showKind(kind types.Kind) error {
	m.pal.heading.Fprintf(m.out, "\n--- %ss ---\n", kind.Label())
	_, err := io.WriteString(m.out, library.FormatReport(m.catalog.ItemsOfKind(kind)))
	return err
}

func (m *menu) readBook() (*types.Book, error) {
	title, err := m.prompt.line("Enter book title: ")
	if err != nil {
		return nil, err
	}
	publisher, err := m.prompt.line("Enter publisher name: ")
	if err != nil {
		return nil, err
	}
	year, err := m.prompt.year("Enter year of publication (YYYY): ")
	if err != nil {
		return nil, err
	}
	author, err := m.prompt.line("Enter author name: ")
	if err != nil {
		return nil, err
	}
	return types.NewBook(title, publisher, year, author)
}

func (m *menu) readMagazine() (*types.Magazine, error) {
	title, err := m.prompt.line("Enter magazine title: ")
	if err != nil {
		return nil, err
	}
	publisher, err := m.prompt.line("Enter publisher name: ")
	if err != nil {
		return nil, err
	}
	year, err := m.prompt.year("Enter year of publication (YYYY): ")
	if err != nil {
		return nil, err
	}
	issue, err := m.prompt.positiveInt("Enter magazine issue number: ")
	if err != nil {
		return nil, err
	}
	return types.NewMagazine(title, publisher, year, issue)
}

// reportError prints err with a message matching its kind.
func (m *menu) reportError(err error) {
	if err == nil {
		return
	}

	var (
		verr *types.ValidationError
		dup  *types.DuplicateEntryError
	)
	switch {
	case errors.As(err, &verr):
		m.pal.err.Fprintf(m.out, "Validation Error: %s\n", verr.Message)
	case errors.As(err, &dup):
		m.pal.err.Fprintf(m.out, "Duplicate Entry Error: %s\n", dup.Error())
	default:
		m.pal.fatal.Fprintf(m.out, "System Error: %s\n", err)
	}
	m.logger.Debug("menu action failed", "error", err)
}

func (m *menu) farewell() {
	m.pal.farewell.Fprintln(m.out, "Program closed. Thank you!")
}
