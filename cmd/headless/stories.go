package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func storiesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List the registered stories",
		Long: `List every story by id, grouped.

Examples:
  headless stories
  headless stories --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if asJSON {
				type entry struct {
					ID    string `json:"id"`
					Group string `json:"group"`
					Title string `json:"title"`
				}
				var list []entry
				for _, st := range a.registry.All() {
					list = append(list, entry{ID: st.ID, Group: st.Group, Title: st.Title})
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			for _, group := range a.registry.Groups() {
				fmt.Fprintf(tw, "%s\n", group)
				for _, st := range a.registry.Group(group) {
					fmt.Fprintf(tw, "  %s\t%s\n", st.ID, st.Description)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	return cmd
}
