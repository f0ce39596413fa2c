// Command tokengen prints a bearer token for the mutating user routes.
//
//	SERVICE_JWT_SECRET=... tokengen -sub backoffice -ttl 24h
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/joho/godotenv"

	"user-registry-api/config"
	"user-registry-api/internal/infrastructure/jwt"
)

func main() {
	sub := flag.String("sub", "", "caller identity put in the sub claim")
	role := flag.String("role", "admin", "caller role")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("error loading .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if !cfg.AuthEnabled() {
		log.Fatal("SERVICE_JWT_SECRET is not set")
	}
	if *sub == "" {
		log.Fatal("-sub is required")
	}

	tok, err := jwt.New(cfg.App.JWTSecret, cfg.App.Name).IssueToken(*sub, *role, *ttl)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(tok)
}
