// Command issue-token mints an access token for a user id, signed with the
// configured secret. Identity is normally issued externally; this is for
// local development and smoke tests.
//
// Usage: issue-token <user-id>
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/factfinder-backend/internal/auth"
	"github.com/heartmarshall/factfinder-backend/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: issue-token <user-id>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	token, err := manager.GenerateAccessToken(os.Args[1])
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
