package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/19990921ck-dev/food/pkg/gateway"
	"github.com/19990921ck-dev/food/pkg/i18n"
)

func newCallCmd(envFiles *[]string) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "call ACTION",
		Short: "Post one action to the backend and print its reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*envFiles)
			if err != nil {
				return err
			}
			ctx := i18n.SetLocale(cmd.Context(), a.module.Translator().DefaultLanguage())

			var payload map[string]any
			if data != "" {
				if err := json.Unmarshal([]byte(data), &payload); err != nil {
					return errors.Join(gateway.ErrInvalidPayload, err)
				}
			}

			res, err := a.module.Gateway().Do(ctx, args[0], payload)
			if err != nil {
				return errors.New(gateway.UserMessage(ctx, a.module.Translator(), err))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(res.Raw()))
			return err
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON object sent along with the action")
	return cmd
}
