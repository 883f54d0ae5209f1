package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/guillocut/internal/model"
	"github.com/piwi3910/guillocut/internal/project"
)

func (c *cli) profilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List, import and export GCode profiles",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom GCode profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tDESCRIPTION")
			for _, p := range model.AllProfiles() {
				kind := "custom"
				if p.IsBuiltIn {
					kind = "built-in"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, kind, p.Description)
			}
			return tw.Flush()
		},
	}

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add a shared profile to the custom profiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.ImportProfile(args[0])
			if err != nil {
				return err
			}
			if err := model.AddCustomProfile(p); err != nil {
				return err
			}
			if err := project.SaveCustomProfiles(c.profilesPath(), model.CustomProfiles); err != nil {
				return err
			}
			log.Info().Str("profile", p.Name).Msg("imported profile")
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export NAME FILE",
		Short: "Write a profile to a file for sharing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := model.GetProfile(args[0])
			if p.Name != args[0] {
				return fmt.Errorf("unknown profile %q", args[0])
			}
			return project.ExportProfile(args[1], p)
		},
	}

	remove := &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a custom profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := model.RemoveCustomProfile(args[0]); err != nil {
				return err
			}
			return project.SaveCustomProfiles(c.profilesPath(), model.CustomProfiles)
		},
	}

	cmd.AddCommand(list, importCmd, exportCmd, remove)
	return cmd
}

func (c *cli) dataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Back up and restore config, inventory and custom profiles",
	}

	exportCmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write all application data to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := project.LoadInventory(c.inventoryPath())
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], c.config, inv, model.CustomProfiles); err != nil {
				return err
			}
			log.Info().Str("path", args[0]).Msg("exported data")
			return nil
		},
	}

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Restore a backup: replace the config, merge inventory and profiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}

			if err := project.SaveAppConfig(c.configPath, backup.Config); err != nil {
				return err
			}
			c.config = backup.Config

			inv, err := project.LoadInventory(c.inventoryPath())
			if err != nil {
				return err
			}
			if err := project.SaveInventory(c.inventoryPath(), project.MergeInventory(inv, backup.Inventory)); err != nil {
				return err
			}

			for _, p := range backup.Profiles {
				if err := model.AddCustomProfile(p); err != nil {
					log.Warn().Err(err).Str("profile", p.Name).Msg("skipped profile")
				}
			}
			if err := project.SaveCustomProfiles(c.profilesPath(), model.CustomProfiles); err != nil {
				return err
			}

			log.Info().Str("version", backup.Version).Str("created", backup.CreatedAt).Msg("imported data")
			return nil
		},
	}

	cmd.AddCommand(exportCmd, importCmd)
	return cmd
}
