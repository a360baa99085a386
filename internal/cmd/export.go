package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/rustcheat/internal/export"
)

// NewExportCommand creates and returns the export subcommand
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <sheet_index>",
		Short: "Export a sheet as Markdown or HTML",
		Long: `Write a sheet as a Markdown document with one heading and code block per
section, or as the same document rendered to HTML.

Without --output the export is printed to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().String("format", "md", "Output format: md or html")
	cmd.Flags().StringP("output", "o", "", "File to write instead of stdout")
	cmd.Flags().Bool("no-wait", false, "Fail instead of waiting when another export holds the output file")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	index, err := parseSheetIndex(args[0])
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	noWait, _ := cmd.Flags().GetBool("no-wait")

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	doc, parsed, err := a.browser.Parsed(index)
	if err != nil {
		return err
	}

	data, err := export.NewExporter().Render(format, doc.Name, parsed)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if noWait {
		err = export.TryWriteFile(output, data)
	} else {
		err = export.WriteFile(cmd.Context(), output, data)
	}
	if err != nil {
		return err
	}
	a.log.LogInfo(fmt.Sprintf("exported sheet %q (%d sections) to %s", doc.Name, parsed.Len(), output))
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", doc.Name, output)
	return nil
}
