package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/droidcat/internal/config"
	"github.com/five82/droidcat/internal/profiles"
)

func newProfilesCommand(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List rendering profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := profiles.Load(f.profilesPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			renderer := lipgloss.NewRenderer(out)
			nameStyle := renderer.NewStyle().Bold(true)
			commentStyle := renderer.NewStyle().Faint(true)
			for _, name := range set.Names() {
				p := set.Profiles[name]
				if p.Comment == "" {
					fmt.Fprintln(out, nameStyle.Render(name))
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", nameStyle.Render(name), commentStyle.Render(p.Comment))
			}
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example profiles file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := f.profilesPath
			if path == "" {
				path = profiles.DefaultPath()
			}
			resolved, err := config.ExpandPath(path)
			if err != nil {
				return err
			}
			if _, err := os.Stat(resolved); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", resolved)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat profiles: %w", err)
			}
			if err := profiles.Save(resolved, profiles.Example()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", resolved)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
