package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/19990921ck-dev/food/pkg/i18n"
	"github.com/19990921ck-dev/food/pkg/recipe"
)

var errNoRecipeEndpoint = errors.New("RECIPE_ENDPOINT is not set")

func newRecipeCmd(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "recipe IDNAME",
		Short: "Look up the daily recipe of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*envFiles)
			if err != nil {
				return err
			}
			client, ok := a.module.Recipes()
			if !ok {
				return errNoRecipeEndpoint
			}
			ctx := i18n.SetLocale(cmd.Context(), a.module.Translator().DefaultLanguage())

			rec, err := client.Lookup(ctx, args[0])
			if err != nil {
				return errors.New(recipe.ErrorMessage(ctx, a.module.Translator(), err))
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		},
	}
}
