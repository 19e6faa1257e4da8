package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/fatih/color"
)

const untitled = "Untitled"

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, color.GreenString("✓")+" "+msg)
}

func printRecord(w io.Writer, record models.Journal) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding journal entry: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printRecords(w io.Writer, records []models.Journal) error {
	if len(records) == 0 {
		fmt.Fprintln(w, color.YellowString("!")+" no journal entries found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTAGS")
	for _, record := range records {
		title := untitled
		if record.Title != nil {
			title = *record.Title
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", record.ID, title, strings.Join(record.Tags, ","))
	}

	return tw.Flush()
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}
