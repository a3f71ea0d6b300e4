// Command token prints a bearer token for an existing user, for local use and scripting.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Top-Technologies/downtime/internal/auth"
	"github.com/Top-Technologies/downtime/internal/config"
	"github.com/Top-Technologies/downtime/internal/database"
	"github.com/Top-Technologies/downtime/internal/logger"
	"github.com/Top-Technologies/downtime/internal/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	login := flag.String("login", "", "login of the user to issue a token for")
	flag.Parse()
	if *login == "" {
		fmt.Fprintln(os.Stderr, "usage: token -login <login>")
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		SequencePrefix:  cfg.DowntimeSequencePrefix,
		SequencePadding: cfg.DowntimeSequencePadding,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	user, err := repository.NewUserRepository(db).GetByLogin(context.Background(), *login)
	if err != nil {
		logrus.WithField("login", *login).Fatal("User not found: ", err)
	}

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		logrus.Fatal("Failed to initialize auth service: ", err)
	}
	token, err := authService.GenerateJWT(user)
	if err != nil {
		logrus.Fatal("Failed to sign token: ", err)
	}

	fmt.Println(token)
}
