package app

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
)

const (
	listTimeLayout = "2006-01-02 15:04:05"
	// summaryWidth caps the summary column.
	summaryWidth = 60
)

// List writes the newest records as a table to w. A limit of zero lists everything.
func (a *App) List(ctx context.Context, w io.Writer, limit int) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	db, err := a.opener.Open(ctx, settings)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	records, err := db.List(ctx, ports.ListOptions{Limit: limit, NewestFirst: true})
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"ID", "Time", "Kind", "Summary", "Request", "Response"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Summary", WidthMax: summaryWidth, WidthMaxEnforcer: text.Trim},
		{Name: "Request", Align: text.AlignRight},
		{Name: "Response", Align: text.AlignRight},
	})
	for _, r := range records {
		t.AppendRow(listRow(r))
	}
	t.AppendFooter(table.Row{"", "", "", pluralize(len(records), "record")})
	t.Render()
	return nil
}

func listRow(r *domain.Record) table.Row {
	request, response := "", ""
	if task := r.Task; task != nil {
		request = bodySize(task.RequestBody)
		response = bodySize(task.ResponseBody)
	}
	return table.Row{
		r.ID.String(),
		formatListTime(r.CreatedAt()),
		r.Kind.String(),
		summary(r),
		request,
		response,
	}
}

func summary(r *domain.Record) string {
	switch {
	case r.Task != nil:
		s := r.Task.Method + " " + r.Task.URL
		if r.Task.StatusCode != 0 {
			s += " " + strconv.Itoa(r.Task.StatusCode)
		}
		if r.Task.ErrorDescription != "" {
			s += " (" + r.Task.ErrorDescription + ")"
		}
		return s
	case r.Message != nil:
		return "[" + string(r.Message.Level) + "] " + r.Message.Text
	default:
		return ""
	}
}

func bodySize(ref *domain.BlobRef) string {
	if ref == nil {
		return "-"
	}
	return humanize.IBytes(uint64(max(ref.Size, 0)))
}

func formatListTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(listTimeLayout)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}
