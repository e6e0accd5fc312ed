package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"folio/internal/ui"
	"folio/internal/viewstate"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the portfolio sections and their keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tSECTION\tNAME")
			for i, s := range viewstate.Sections() {
				fmt.Fprintf(w, "%d\t%s\t%s %s\n", i+1, s.String(), s.Icon(), s.Label())
			}
			return w.Flush()
		},
	}
}

func newRenderCmd(v *viper.Viper, configFile *string) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "render <section>",
		Short: "Print one section without starting the interactive shell",
		Long: `Render prints a section's content at the given width, for previewing a content
file. Sections: home, about, experience, education, projects, contact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := viewstate.ParseSection(args[0])
			if err != nil {
				return err
			}
			if width <= 0 {
				return fmt.Errorf("--width must be positive, got %d", width)
			}
			rt, err := load(v, *configFile)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			view := ui.NewSectionViews(rt.portfolio).For(s)
			view.SetSize(width, renderHeight)
			out := strings.TrimRight(view.View(), " \n")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "width in columns")
	return cmd
}

// renderHeight is tall enough that render never scrolls.
const renderHeight = 1000

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the folio version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
		},
	}
}
