package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"spa-admin/models"
	"spa-admin/reports"
	"spa-admin/services"
	"spa-admin/utils"
)

type reportOptions struct {
	format string
	out    string
	from   string
	to     string
	method string
	status string
	query  string
	top    int
	token  string
}

func newReportCommand() *cobra.Command {
	var opts reportOptions
	cmd := &cobra.Command{
		Use:       "report <earnings|services|customers|appointments>",
		Short:     "Build a report from the spa API and write it to a file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"earnings", "services", "customers", "appointments"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "csv", "output format: json, csv, pdf, xlsx or print")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default: generated name, \"-\" for stdout)")
	cmd.Flags().StringVar(&opts.from, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.to, "to", "", "last day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.method, "method", "", "payment method: Cash or Online")
	cmd.Flags().StringVar(&opts.status, "status", "", "appointment status")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "free-text filter")
	cmd.Flags().IntVar(&opts.top, "top", 0, "limit ranked reports to the top N rows")
	cmd.Flags().StringVar(&opts.token, "token", "", "API bearer token (default: DIGEST_TOKEN)")
	return cmd
}

func (o reportOptions) toQuery(kind services.ReportKind) (services.ReportQuery, error) {
	q := services.ReportQuery{
		Kind:   kind,
		Method: models.PaymentMethod(o.method),
		Query:  o.query,
		TopN:   o.top,
	}
	var err error
	if o.from != "" {
		if q.From, err = utils.ParseDay(o.from); err != nil {
			return q, fmt.Errorf("--from: %w", err)
		}
	}
	if o.to != "" {
		if q.To, err = utils.ParseDay(o.to); err != nil {
			return q, fmt.Errorf("--to: %w", err)
		}
	}
	if o.status != "" {
		if q.Status, err = models.ParseAppointmentStatus(o.status); err != nil {
			return q, fmt.Errorf("--status: %w", err)
		}
	}
	return q, nil
}

func runReport(cmd *cobra.Command, rawKind string, opts reportOptions) error {
	kind, err := services.ParseReportKind(rawKind)
	if err != nil {
		return err
	}
	format, err := reports.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	q, err := opts.toQuery(kind)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	token := opts.token
	if token == "" {
		token = a.cfg.DigestToken
	}
	client, err := a.serviceClient(token)
	if err != nil {
		return fmt.Errorf("api token: %w", err)
	}

	res, err := services.NewReportService(client, a.cfg.CurrencySymbol).Build(cmd.Context(), q)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	name := opts.out
	if name == "" {
		name = format.Filename(res.Table)
		if name == "" {
			name = res.Table.Filename + ".html"
		}
	}
	if name != "-" {
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := reports.Write(w, format, res.Table, time.Now()); err != nil {
		return err
	}
	if name != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d rows)\n", name, len(res.Table.Rows))
	}
	return nil
}
