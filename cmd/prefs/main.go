// Command prefs inspects and edits the local favorites/following lists. It is
// a stand-in for the rendering client's own preference storage and never
// talks to the API server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"nexus/client/prefs"
	"nexus/internal/cache"
	"nexus/internal/config"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: prefs <command> <user-id> [arg]

commands:
  favorites <user-id>            list favorite article slugs
  favorite  <user-id> <slug>     toggle a favorite slug
  following <user-id>            list followed usernames
  follow    <user-id> <username> toggle a followed username`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}
	command, userID := os.Args[1], os.Args[2]

	cfg := config.Load()
	store := prefs.NewStore(cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB))
	ctx := context.Background()

	switch command {
	case "favorites":
		printList(store.Favorites(ctx, userID))
	case "favorite":
		if len(os.Args) < 4 {
			usage()
		}
		printList(store.ToggleFavorite(ctx, userID, os.Args[3]))
	case "following":
		printList(store.Following(ctx, userID))
	case "follow":
		if len(os.Args) < 4 {
			usage()
		}
		printList(store.ToggleFollowing(ctx, userID, os.Args[3]))
	default:
		log.Printf("unknown command %q", command)
		usage()
	}
}

func printList(values []string) {
	if len(values) == 0 {
		fmt.Println("(empty)")
		return
	}
	fmt.Println(strings.Join(values, "\n"))
}
