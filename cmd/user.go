package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hipchat/internal/api"
	"hipchat/internal/notifier"
)

var (
	userNotify bool
	userFormat string
)

// userCmd sends a private message to a user.
var userCmd = &cobra.Command{
	Use:   "user <user> <message...>",
	Short: "Send a private message to a user",
	Long: `Send a private message to a user, addressed by id, email or @mention
name. The message arguments are joined with spaces; pass a single "-"
to read the message from stdin.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runUser,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.Flags().BoolVarP(&userNotify, "notify", "n", false, "trigger a user notification for the recipient")
	userCmd.Flags().StringVarP(&userFormat, "format", "f", string(api.DefaultFormat), "message format (text or html)")
}

func runUser(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	message, err := messageFromArgs(args[1:])
	if err != nil {
		return err
	}

	opts := api.UserMessageOptions{
		Notify: userNotify,
		Format: api.MessageFormat(userFormat),
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	if err := notifier.NewUserNotifier(client, args[0], opts).Notify(ctx, message); err != nil {
		return err
	}
	log.Info().Str("user", args[0]).Msg("message sent")
	return nil
}
