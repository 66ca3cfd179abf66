// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles account and session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the account session",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Full name", Required: true},
					&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
					&cli.StringFlag{Name: "username", Usage: "Unique username", Required: true},
					&cli.StringFlag{Name: "password", Usage: "Password", Required: true},
					&cli.StringFlag{Name: "avatar", Usage: "Path to avatar image", Required: true},
					&cli.StringFlag{Name: "cover", Usage: "Path to cover image"},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "login",
				Usage: "Sign in with a username or email",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "identifier"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Password", Required: true},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Invalidate the session on the server and locally",
				Action: r.AuthLogout,
			},
			{
				Name:    "whoami",
				Aliases: []string{"status"},
				Usage:   "Show the signed-in account",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.AuthWhoami,
			},
			{
				Name:   "refresh",
				Usage:  "Rotate the session tokens once",
				Action: r.AuthRefresh,
			},
			{
				Name:  "update",
				Usage: "Update the account's name or email",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "New full name"},
					&cli.StringFlag{Name: "email", Usage: "New email address"},
				},
				Action: r.AuthUpdate,
			},
			{
				Name:  "history",
				Usage: "Show the account's watch history",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.AuthHistory,
			},
		},
	}
}

// videosCommand handles video catalog operations
func videosCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "videos",
		Aliases: []string{"v"},
		Usage:   "Video operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the video catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.StringFlag{Name: "csv", Usage: "Write the catalog to a CSV file"},
				},
				Action: r.VideosList,
			},
			{
				Name:  "get",
				Usage: "Show one video",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON", Value: true},
				},
				Action: r.VideosGet,
			},
			{
				Name:  "publish",
				Usage: "Upload and publish a new video",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "Video title", Required: true},
					&cli.StringFlag{Name: "description", Usage: "Video description"},
					&cli.StringFlag{Name: "file", Usage: "Path to the video file", Required: true},
					&cli.StringFlag{Name: "thumbnail", Usage: "Path to the thumbnail image", Required: true},
				},
				Action: r.VideosPublish,
			},
			{
				Name:  "update",
				Usage: "Update a video's details",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "New title"},
					&cli.StringFlag{Name: "description", Usage: "New description"},
					&cli.StringFlag{Name: "thumbnail", Usage: "Path to a new thumbnail image"},
				},
				Action: r.VideosUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a video",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.VideosDelete,
			},
			{
				Name:  "toggle",
				Usage: "Flip a video's publish state",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.VideosToggle,
			},
		},
	}
}

// commentsCommand handles comment operations
func commentsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "comments",
		Usage: "Comment operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List a video's comments",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "video-id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.CommentsList,
			},
			{
				Name:  "add",
				Usage: "Comment on a video",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "video-id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "content", Aliases: []string{"m"}, Usage: "Comment text", Required: true},
				},
				Action: r.CommentsAdd,
			},
			{
				Name:  "update",
				Usage: "Edit a comment",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "content", Aliases: []string{"m"}, Usage: "New comment text", Required: true},
				},
				Action: r.CommentsUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a comment",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.CommentsDelete,
			},
		},
	}
}

// tweetsCommand handles tweet operations
func tweetsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tweets",
		Usage: "Tweet operations",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Post a tweet",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "content", Aliases: []string{"m"}, Usage: "Tweet text", Required: true},
				},
				Action: r.TweetsCreate,
			},
			{
				Name:  "list",
				Usage: "List all tweets",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "mine", Usage: "Only the signed-in account's tweets"},
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.TweetsList,
			},
			{
				Name:  "update",
				Usage: "Edit a tweet",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "content", Aliases: []string{"m"}, Usage: "New tweet text", Required: true},
				},
				Action: r.TweetsUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a tweet",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.TweetsDelete,
			},
		},
	}
}

// likesCommand handles like operations
func likesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "likes",
		Usage: "Like operations",
		Commands: []*cli.Command{
			{
				Name:  "video",
				Usage: "Toggle a like on a video",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.LikesVideo,
			},
			{
				Name:  "comment",
				Usage: "Toggle a like on a comment",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.LikesComment,
			},
			{
				Name:  "tweet",
				Usage: "Toggle a like on a tweet",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.LikesTweet,
			},
			{
				Name:  "videos",
				Usage: "List the videos the signed-in account has liked",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.LikesVideos,
			},
		},
	}
}

// subsCommand handles subscription operations
func subsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "subs",
		Aliases: []string{"subscriptions"},
		Usage:   "Subscription operations",
		Commands: []*cli.Command{
			{
				Name:  "toggle",
				Usage: "Subscribe to or unsubscribe from a channel",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "channel-id"},
				},
				Action: r.SubsToggle,
			},
			{
				Name:  "channels",
				Usage: "List the channels the signed-in account subscribes to",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.SubsChannels,
			},
			{
				Name:  "subscribers",
				Usage: "List a channel's subscribers",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "channel-id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.SubsSubscribers,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the preference database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Create a config.toml from the embedded template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// themeCommand handles the persisted display theme
func themeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "theme",
		Usage: "Show or change the display theme",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the current theme",
				Action: r.ThemeShow,
			},
			{
				Name:  "set",
				Usage: "Set the theme (light or dark)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.ThemeSet,
			},
			{
				Name:   "toggle",
				Usage:  "Flip between light and dark",
				Action: r.ThemeToggle,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive terminal UI",
		Action:  r.TUI,
	}
}
