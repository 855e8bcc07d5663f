package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wodboard/wodboard/internal/app"
	"github.com/wodboard/wodboard/internal/auth"
	"github.com/wodboard/wodboard/internal/logger"
	"github.com/wodboard/wodboard/internal/models"
)

var (
	version = "dev"
)

func main() {
	port := flag.Int("port", 8082, "HTTP server port")
	dbPath := flag.String("db", "competition.db", "SQLite database path")
	judgePw := flag.String("judgepw", "", "Judge password (auto-generated if not set)")
	coachPw := flag.String("coachpw", "", "Coach password (auto-generated if not set)")
	adminPw := flag.String("adminpw", "", "Admin password (auto-generated if not set)")
	ownerPw := flag.String("ownerpw", "", "Owner password (auto-generated if not set)")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `WODBoard - CrossFit Competition Scoring System

Usage:
  wodboard [options]

Options:
  -port int      HTTP server port (default 8082)
  -db string     SQLite database path (default "competition.db")
  -judgepw str   Judge password (auto-generated if not set)
  -coachpw str   Coach password (auto-generated if not set)
  -adminpw str   Admin password (auto-generated if not set)
  -ownerpw str   Owner password (auto-generated if not set)
  -loglevel str  Log level: debug, info, warn, error (default "info")
  -version       Show version and exit
  -help          Show this help message

Examples:
  wodboard                           # Run on port 8082 with competition.db
  wodboard -port 8080                # Run on port 8080
  wodboard -db /data/throwdown.db    # Use custom database path
  wodboard -adminpw secret123        # Use specific admin password

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("wodboard %s\n", version)
		os.Exit(0)
	}

	// Every role gets a password; anything not set on the command line is
	// generated fresh for this run.
	passwords := map[models.Role]string{
		models.RoleJudge: *judgePw,
		models.RoleCoach: *coachPw,
		models.RoleAdmin: *adminPw,
		models.RoleOwner: *ownerPw,
	}
	for role, pw := range passwords {
		if pw == "" {
			passwords[role] = auth.GeneratePassword()
		}
	}
	sessionAuth := auth.New(passwords)

	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	a, err := app.New(appLog, *dbPath, sessionAuth)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	for _, role := range []models.Role{models.RoleJudge, models.RoleCoach, models.RoleAdmin, models.RoleOwner} {
		appLog.Info("Role password", "role", role.String(), "password", passwords[role])
	}

	addr := fmt.Sprintf(":%d", *port)
	if err := a.Run(addr); err != nil {
		log.Fatal(err)
	}
}
