package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/flyer"
	"github.com/tsawler/flyer/model"
)

func generateCmd(flags *rootFlags) *cobra.Command {
	var (
		project   model.ProjectData
		projectID string
		out       string
	)

	c := &cobra.Command{
		Use:   "generate [template]",
		Short: "Generate a single flyer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, flags.config, flags.debug)
			if err != nil {
				return err
			}
			defer a.close()

			templateID := "basic"
			if len(args) == 1 {
				templateID = args[0]
			}

			if projectID != "" {
				store, closeStore, err := a.projectStore(ctx)
				if err != nil {
					return err
				}
				defer closeStore()
				if store == nil {
					return fmt.Errorf("--project requires a project store (set projects or database_url)")
				}
				if project, err = store.Get(ctx, projectID); err != nil {
					return err
				}
			}
			if project.IsZero() {
				return fmt.Errorf("no project data (use --title/--address or --project)")
			}

			doc, err := a.gen.Generate(ctx, templateID, project)
			if err != nil {
				return err
			}
			if len(doc.Warnings) > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warnings:")
				fmt.Fprintln(cmd.ErrOrStderr(), flyer.FormatWarnings(doc.Warnings))
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(doc.Bytes)
				return err
			}
			if err := os.WriteFile(out, doc.Bytes, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bytes, summary %s, run %s\n",
				out, doc.Size, doc.SummarySource, doc.RunID)
			return nil
		},
	}

	c.Flags().StringVar(&project.Title, "title", "", "property title")
	c.Flags().StringVar(&project.Address, "address", "", "property address")
	c.Flags().StringVar(&project.Website, "website", "", "property website")
	c.Flags().StringVar(&project.Email, "email", "", "contact email")
	c.Flags().StringVarP(&projectID, "project", "p", "", "load project data from the store by id")
	c.Flags().StringVarP(&out, "out", "o", "flyer.pdf", "output file, or - for stdout")
	c.MarkFlagsMutuallyExclusive("project", "title")
	return c
}
