package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-fleet-logbook/internal/adapter"
	"github.com/MKhiriev/go-fleet-logbook/internal/workers"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errMissingArg     = errors.New("missing argument")
)

const usage = `usage: logbook <command> [flags]

commands:
  login  -email <email> -password <password> | -id-token <token>
  logout
  version
  import [-dry-run] <file.json>
  report [-month YYYY-MM]
`

type cli struct {
	api      adapter.LogbookAPI
	out      io.Writer
	readFile func(name string) ([]byte, error)
	now      func() time.Time
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.out, usage)
		return errNoCommand
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return c.login(ctx, rest)
	case "logout":
		return c.api.Logout(ctx)
	case "version":
		return c.version(ctx)
	case "import":
		return c.importVehicles(ctx, rest)
	case "report":
		return c.report(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(c.out, usage)
		return nil
	}

	fmt.Fprint(c.out, usage)
	return fmt.Errorf("%w: %q", errUnknownCommand, cmd)
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(c.out)
	var creds models.Credentials
	fs.StringVar(&creds.Email, "email", "", "account email")
	fs.StringVar(&creds.Password, "password", "", "account password")
	fs.StringVar(&creds.IDToken, "id-token", "", "Firebase ID token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if creds.IDToken == "" && (creds.Email == "" || creds.Password == "") {
		return fmt.Errorf("%w: -email and -password, or -id-token", errMissingArg)
	}

	resp, err := c.api.Login(ctx, creds)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "signed in as %s (%s), session valid until %s\n",
		resp.User.Email, resp.User.Role, time.UnixMilli(resp.ExpiresAt).UTC().Format(time.RFC3339))
	fmt.Fprintf(c.out, "export ADAPTER_TOKEN=%s\n", resp.Token)
	return nil
}

func (c *cli) version(ctx context.Context) error {
	info, err := c.api.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "server version: %s\nbuild date: %s\nbuild commit: %s\n", info.Version, info.Date, info.Commit)
	fmt.Fprintf(c.out, "cli version: %s\n", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Info().Version)
	return nil
}

func (c *cli) importVehicles(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(c.out)
	dryRun := fs.Bool("dry-run", false, "only report what would be created")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: import document path", errMissingArg)
	}

	doc, err := c.readFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("error reading import document: %w", err)
	}

	report, err := c.api.ImportVehicles(ctx, doc, *dryRun)
	if err != nil {
		return err
	}

	printImportReport(c.out, report)
	return nil
}

func printImportReport(out io.Writer, report models.ImportReport) {
	if report.DryRun {
		fmt.Fprintf(out, "dry run: %d vehicles would be created\n", len(report.Candidates))
		for _, candidate := range report.Candidates {
			fmt.Fprintf(out, "  row %d: %s (%s)\n", candidate.Row, candidate.Vehicle.Plate, candidate.Vehicle.Type)
		}
	} else {
		fmt.Fprintf(out, "created %d vehicles\n", len(report.Created))
		for _, v := range report.Created {
			fmt.Fprintf(out, "  %s %s (%s)\n", v.ID, v.Plate, v.Type)
		}
		if len(report.Skipped) > 0 {
			fmt.Fprintf(out, "skipped existing plates: %s\n", strings.Join(report.Skipped, ", "))
		}
	}

	if len(report.Unmatched) > 0 {
		fmt.Fprintf(out, "%d rows not imported\n", len(report.Unmatched))
		for _, row := range report.Unmatched {
			fmt.Fprintf(out, "  row %d: %s\n", row.Row, row.Reason)
		}
	}
}

// report prints the month's totals as CSV. The month defaults to the
// previous calendar month.
func (c *cli) report(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(c.out)
	rawMonth := fs.String("month", "", "month as YYYY-MM")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := time.Now
	if c.now != nil {
		now = c.now
	}

	month := models.MonthOf(now()).Previous()
	if *rawMonth != "" {
		parsed, err := models.ParseMonthKey(*rawMonth)
		if err != nil {
			return err
		}
		month = parsed
	}

	totals, err := c.api.MonthReport(ctx, month)
	if err != nil {
		return err
	}

	return workers.WriteReportCSV(c.out, totals)
}
