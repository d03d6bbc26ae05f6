package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hipchat/internal/api"
	"hipchat/internal/notifier"
)

var (
	roomColor  string
	roomLabel  string
	roomNotify bool
	roomFormat string
)

// roomCmd posts a notification to a room.
var roomCmd = &cobra.Command{
	Use:   "room <room> <message...>",
	Short: "Post a notification to a room",
	Long: `Post a notification to a room. The message arguments are joined
with spaces; pass a single "-" to read the message from stdin.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRoom,
}

func init() {
	rootCmd.AddCommand(roomCmd)
	roomCmd.Flags().StringVarP(&roomColor, "color", "c", string(api.DefaultColor), "notification color (yellow, green, red, purple, gray, random)")
	roomCmd.Flags().StringVarP(&roomLabel, "label", "l", "", "sender label (defaults to the label config key)")
	roomCmd.Flags().BoolVarP(&roomNotify, "notify", "n", false, "trigger a user notification in the room")
	roomCmd.Flags().StringVarP(&roomFormat, "format", "f", string(api.DefaultFormat), "message format (text or html)")
}

func runRoom(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	message, err := messageFromArgs(args[1:])
	if err != nil {
		return err
	}

	opts := api.RoomMessageOptions{
		Color:  api.Color(roomColor),
		Label:  resolveLabel(roomLabel, appConfig.Label),
		Notify: roomNotify,
		Format: api.MessageFormat(roomFormat),
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	if err := notifier.NewRoomNotifier(client, args[0], opts).Notify(ctx, message); err != nil {
		return err
	}
	log.Info().Str("room", args[0]).Msg("notification sent")
	return nil
}
