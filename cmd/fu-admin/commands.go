package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/projectfu-discord/internal/services"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file.yaml]",
	Short: "Create or replace the actors listed in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		actors, err := ParseSeed(data)
		if err != nil {
			return err
		}

		return withProvider(cmd.Context(), func(p *services.Provider) error {
			for _, a := range actors {
				saved, err := p.CharacterService.SaveActor(cmd.Context(), a)
				if err != nil {
					return fmt.Errorf("failed to save %s: %w", a.Name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", saved.Name, saved.ID)
			}
			return nil
		})
	},
}

var bindCmd = &cobra.Command{
	Use:   "bind [discord-user-id] [actor-id]",
	Short: "Bind a player's default character",
	Long:  "Bind a player's default character. Pass an empty actor ID to unbind.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(p *services.Provider) error {
			if err := p.CharacterService.BindCharacter(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bound %s to %q\n", args[0], args[1])
			return nil
		})
	},
}

var actorsCmd = &cobra.Command{
	Use:   "actors",
	Short: "List stored actors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withProvider(cmd.Context(), func(p *services.Provider) error {
			actors, err := p.CharacterService.ListActors(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tHP\tDEF\tMDEF")
			for _, a := range actors {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%d\t%d\n",
					a.ID, a.Name, a.Type, a.Resources.HP.Value, a.Resources.HP.Max, a.Derived.Def, a.Derived.MDef)
			}
			return w.Flush()
		})
	},
}

var featuresCmd = &cobra.Command{
	Use:   "features [actor-id]",
	Short: "Decode an actor's class features",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(p *services.Provider) error {
			features, err := p.CharacterService.ClassFeatures(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, f := range features {
				fmt.Fprintf(cmd.OutOrStdout(), "%T %+v\n", f, f)
			}
			return nil
		})
	},
}
