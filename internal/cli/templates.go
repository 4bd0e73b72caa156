package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func templatesCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "templates",
		Short: "List the available templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), flags.config, flags.debug)
			if err != nil {
				return err
			}
			defer a.close()

			templates := a.gen.Templates()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(templates)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tASSET\tPLACEHOLDERS")
			for _, tpl := range templates {
				keys := make([]string, len(tpl.Placeholders))
				for i, p := range tpl.Placeholders {
					keys[i] = p.Key
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", tpl.ID, tpl.Name, tpl.Asset, strings.Join(keys, ","))
			}
			return tw.Flush()
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return c
}
