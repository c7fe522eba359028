package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/feedline/aio-go/aio"
	"github.com/feedline/aio-go/internal/config"
)

var (
	username   string
	key        string
	serviceURL string
	apiVersion string
	debug      bool
)

const requestTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aio",
		Short: "Adafruit IO CLI for feeds, data points, and groups",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("AIO_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&username, "username", getEnv("AIO_USERNAME", ""), "Adafruit IO username")
	rootCmd.PersistentFlags().StringVar(&key, "key", getEnv("AIO_KEY", ""), "Adafruit IO key")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "url", getEnv("AIO_URL", aio.DefaultBaseURL), "Base URL of the Adafruit IO REST API")
	rootCmd.PersistentFlags().StringVar(&apiVersion, "api-version", getEnv("AIO_VERSION", aio.DefaultAPIVersion), "REST API version")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newSendCmd())
	rootCmd.AddCommand(newLastCmd())
	rootCmd.AddCommand(newListDataCmd())
	rootCmd.AddCommand(newDeleteDataCmd())
	rootCmd.AddCommand(newGetFeedCmd())
	rootCmd.AddCommand(newListFeedsCmd())
	rootCmd.AddCommand(newCreateFeedCmd())
	rootCmd.AddCommand(newDeleteFeedCmd())
	rootCmd.AddCommand(newListGroupsCmd())
	rootCmd.AddCommand(newGetGroupCmd())
	rootCmd.AddCommand(newCreateGroupCmd())
	rootCmd.AddCommand(newDeleteGroupCmd())

	return rootCmd
}

func newClient() (*aio.Client, error) {
	return aio.New(username, key,
		aio.WithBaseURL(serviceURL),
		aio.WithAPIVersion(apiVersion),
	)
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func newSendCmd() *cobra.Command {
	var lat, lon, ele float64
	var createdAt string

	cmd := &cobra.Command{
		Use:   "send <feed-key> <value>",
		Short: "Publish a data point to a feed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			dp := aio.DataPoint{Value: args[1]}
			if cmd.Flags().Changed("lat") {
				dp.Lat = aio.Float64(lat)
			}
			if cmd.Flags().Changed("lon") {
				dp.Lon = aio.Float64(lon)
			}
			if cmd.Flags().Changed("ele") {
				dp.Ele = aio.Float64(ele)
			}
			if createdAt != "" {
				dp.CreatedAt = aio.String(createdAt)
			}

			start := time.Now()
			stored, err := c.SendData(ctx, args[0], dp)
			if err != nil {
				return err
			}
			log.Debug().Dur("elapsed", time.Since(start)).Str("feed", args[0]).Msg("data point sent")
			return printJSON(stored)
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	cmd.Flags().Float64Var(&ele, "ele", 0, "Elevation in meters")
	cmd.Flags().StringVar(&createdAt, "created-at", "", "RFC-3339 timestamp to backdate the point")
	return cmd
}

func newLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last <feed-key>",
		Short: "Read the most recent data point on a feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			dp, err := c.ReceiveData(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(dp)
		},
	}
}

func newListDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-data <feed-key>",
		Short: "List the stored data points on a feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			points, err := c.ListData(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(points)
		},
	}
}

func newDeleteDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-data <feed-key> <data-id>",
		Short: "Delete one data point from a feed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			ack, err := c.DeleteData(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(ack)
		},
	}
}

func newGetFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-feed <feed-key>",
		Short: "Fetch one feed by key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			feed, err := c.GetFeed(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(feed)
		},
	}
}

func newListFeedsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-feeds",
		Short: "List the account's feeds with their latest values",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			feeds, err := c.ListFeeds(ctx)
			if err != nil {
				return err
			}
			return printJSON(feeds)
		},
	}
}

func newCreateFeedCmd() *cobra.Command {
	var feedKey, description string

	cmd := &cobra.Command{
		Use:   "create-feed <name>",
		Short: "Create a new feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			feed, err := c.CreateFeed(ctx, aio.CreateFeedRequest{
				Name:        args[0],
				Key:         feedKey,
				Description: description,
			})
			if err != nil {
				return err
			}
			return printJSON(feed)
		},
	}

	cmd.Flags().StringVar(&feedKey, "feed-key", "", "Explicit feed key (derived from the name when empty)")
	cmd.Flags().StringVar(&description, "description", "", "Feed description")
	return cmd
}

func newDeleteFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-feed <feed-key>",
		Short: "Delete a feed and all of its data points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := c.DeleteFeed(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("feed %s deleted\n", args[0])
			return nil
		},
	}
}

func newListGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-groups",
		Short: "List the account's groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			groups, err := c.ListGroups(ctx)
			if err != nil {
				return err
			}
			return printJSON(groups)
		},
	}
}

func newGetGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-group <group-key>",
		Short: "Fetch one group by key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			group, err := c.GetGroup(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(group)
		},
	}
}

func newCreateGroupCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create-group <name>",
		Short: "Create a new group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			group, err := c.CreateGroup(ctx, args[0], description)
			if err != nil {
				return err
			}
			return printJSON(group)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Brief summary of the group")
	return cmd
}

func newDeleteGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-group <group-key>",
		Short: "Delete a group (member feeds are detached, not deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := c.DeleteGroup(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("group %s deleted\n", args[0])
			return nil
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
