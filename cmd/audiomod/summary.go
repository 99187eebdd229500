package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"audiomod/internal/converter"
	"audiomod/internal/deps"
	"audiomod/internal/initializer"
	"audiomod/internal/organizer"
	"audiomod/internal/pipeline"
)

// summaryWriter prints per-stage results: rounded tables on a terminal,
// plain greppable lines everywhere else.
type summaryWriter struct {
	w      io.Writer
	pretty bool
}

func newSummaryWriter(w io.Writer) *summaryWriter {
	return &summaryWriter{w: w, pretty: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (s *summaryWriter) initialized(result initializer.Result) {
	descriptorState := "found"
	if result.DescriptorCreated {
		descriptorState = "created"
	}
	configState := "present"
	if result.ConfigCreated {
		configState = "created"
	}

	if s.pretty {
		s.section(pipeline.StageInitialize)
		fmt.Fprintln(s.w, renderTable(
			table.Row{"Item", "State", "Path"},
			[]table.Row{
				{"Mode", string(result.Mode), ""},
				{"Project descriptor", descriptorState, result.DescriptorPath},
				{"Module config", configState, result.ConfigPath},
			},
		))
		return
	}
	fmt.Fprintf(s.w, "initialize: mode=%s\n", result.Mode)
	fmt.Fprintf(s.w, "initialize: project descriptor %s (%s)\n", result.DescriptorPath, descriptorState)
	fmt.Fprintf(s.w, "initialize: module config %s (%s)\n", result.ConfigPath, configState)
}

func (s *summaryWriter) organized(result organizer.Result) {
	if result.Moves() == 0 && len(result.Skipped) == 0 {
		fmt.Fprintln(s.w, "organize: nothing to do")
		return
	}

	if s.pretty {
		s.section(pipeline.StageOrganize)
		fmt.Fprintln(s.w, renderTable(
			table.Row{"Bucket", "Moved"},
			[]table.Row{
				{organizer.BucketEN, len(result.MovedEN)},
				{organizer.BucketGlobal, len(result.MovedGlobal)},
				{"(skipped)", len(result.Skipped)},
			},
			2,
		))
		return
	}
	fmt.Fprintf(s.w, "organize: moved %d to %s, %d to %s, skipped %d\n",
		len(result.MovedEN), organizer.BucketEN,
		len(result.MovedGlobal), organizer.BucketGlobal,
		len(result.Skipped))
}

func (s *summaryWriter) converted(report converter.Report) {
	if s.pretty {
		s.section(pipeline.StageConvert)
		fmt.Fprintln(s.w, renderTable(
			table.Row{"Found", "Converted", "Skipped", "Failed"},
			[]table.Row{{report.Found, report.Converted, report.Skipped, len(report.Failed)}},
			1, 2, 3, 4,
		))
	} else {
		fmt.Fprintf(s.w, "convert: found %d, converted %d, skipped %d, failed %d\n",
			report.Found, report.Converted, report.Skipped, len(report.Failed))
	}
	for _, failure := range report.Failed {
		fmt.Fprintf(s.w, "convert: failed %s: %v\n", failure.Path, failure.Err)
	}
}

func (s *summaryWriter) dependencies(statuses []deps.Status) {
	if s.pretty {
		rows := make([]table.Row, 0, len(statuses))
		for _, status := range statuses {
			rows = append(rows, table.Row{
				status.Name,
				status.Command,
				strconv.FormatBool(status.Available),
				status.Detail,
			})
		}
		fmt.Fprintln(s.w, renderTable(table.Row{"Name", "Command", "Available", "Detail"}, rows))
		return
	}
	for _, status := range statuses {
		fmt.Fprintf(s.w, "deps: %s command=%s available=%v detail=%s\n",
			status.Name, status.Command, status.Available, status.Detail)
	}
}

func (s *summaryWriter) section(stage string) {
	fmt.Fprintf(s.w, "%s\n", pipeline.DisplayLabel(stage))
}
