package client

import (
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) newCreateCommand() *cobra.Command {
	var (
		title, body string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a journal entry",
		Long: `Create a new journal entry and print its id.

Title and body are optional; an omitted flag is stored as absent, not as an
empty string. Repeat --tag to attach several tags; their order is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := models.JournalRequest{Tags: tags}
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("body") {
				req.Body = &body
			}

			id, err := a.adapter.Create(cmd.Context(), req)
			if err != nil {
				a.logger.Err(err).Str("func", "*App.create").Msg("error creating journal entry")
				return fmt.Errorf("error creating journal entry: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "created "+id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title")
	cmd.Flags().StringVarP(&body, "body", "b", "", "entry body")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "entry tag (repeatable)")

	return cmd
}

func (a *App) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.adapter.Get(cmd.Context(), args[0])
			if err != nil {
				a.logger.Err(err).Str("func", "*App.get").Str("id", args[0]).Msg("error getting journal entry")
				return fmt.Errorf("error getting journal entry: %w", err)
			}

			return printRecord(cmd.OutOrStdout(), record)
		},
	}
}

func (a *App) newListCommand() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Long: `List every journal entry as a table of id, title and tags.

With --tag only entries carrying exactly that tag are shown. Matching is
case-sensitive; --tag "" selects entries with an empty tag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter models.ListFilter
			if cmd.Flags().Changed("tag") {
				filter.Tag = &tag
			}

			records, err := a.adapter.List(cmd.Context(), filter)
			if err != nil {
				a.logger.Err(err).Str("func", "*App.list").Msg("error listing journal entries")
				return fmt.Errorf("error listing journal entries: %w", err)
			}

			return printRecords(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "show only entries with this tag")

	return cmd
}

func (a *App) newUpdateCommand() *cobra.Command {
	var (
		title, body string
		tags        []string
		clearTags   bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a journal entry",
		Long: `Change the title, body or tags of an existing entry. The id stays the same.

Fields whose flags are not given keep their current value. --tag replaces
the whole tag list; --clear-tags removes every tag.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			current, err := a.adapter.Get(cmd.Context(), id)
			if err != nil {
				a.logger.Err(err).Str("func", "*App.update").Str("id", id).Msg("error getting journal entry")
				return fmt.Errorf("error getting journal entry: %w", err)
			}

			req := models.JournalRequest{Title: current.Title, Body: current.Body, Tags: current.Tags}
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("body") {
				req.Body = &body
			}
			switch {
			case clearTags:
				req.Tags = []string{}
			case cmd.Flags().Changed("tag"):
				req.Tags = tags
			}

			updated, err := a.adapter.Update(cmd.Context(), id, req)
			if err != nil {
				a.logger.Err(err).Str("func", "*App.update").Str("id", id).Msg("error updating journal entry")
				return fmt.Errorf("error updating journal entry: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "updated "+updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&body, "body", "b", "", "new body")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "new tag list (repeatable)")
	cmd.Flags().BoolVar(&clearTags, "clear-tags", false, "remove every tag")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")

	return cmd
}

func (a *App) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.adapter.Delete(cmd.Context(), args[0]); err != nil {
				a.logger.Err(err).Str("func", "*App.delete").Str("id", args[0]).Msg("error deleting journal entry")
				return fmt.Errorf("error deleting journal entry: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "deleted "+args[0])
			return nil
		},
	}
}

func (a *App) newExportCommand() *cobra.Command {
	var (
		output, formatName string
		render             bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole journal",
		Long: `Render every entry as one document.

By default the server also writes the export to its configured export
path. With --render the server only renders. The document is written to
the file given by -o, or to stdout.

Examples:
  journal export -o journal.md
  journal export --format html -o journal.html
  journal export --render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, ok := models.ParseExportFormat(formatName)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownExportFormat, formatName)
			}

			fetch := a.adapter.Export
			if render {
				fetch = a.adapter.Render
			}

			data, err := fetch(cmd.Context(), format)
			if err != nil {
				a.logger.Err(err).Str("func", "*App.export").Msg("error exporting journal")
				return fmt.Errorf("error exporting journal: %w", err)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err = store.WriteFileAtomic(output, data); err != nil {
				a.logger.Err(err).Str("func", "*App.export").Str("output", output).Msg("error writing export file")
				return fmt.Errorf("error writing export file: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "exported to "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default stdout)")
	cmd.Flags().StringVarP(&formatName, "format", "f", string(models.ExportMarkdown), "export format: markdown or html")
	cmd.Flags().BoolVar(&render, "render", false, "render only, do not write the server-side export file")

	return cmd
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printBuildInfo(cmd.OutOrStdout(), a.buildInfo)

			serverVersion, err := a.adapter.GetVersion(cmd.Context())
			if err != nil {
				a.logger.Err(err).Str("func", "*App.version").Msg("error getting server version")
				return fmt.Errorf("error getting server version: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\n", serverVersion)
			return nil
		},
	}
}
