package main

import (
	"bitbucket.org/sotavant/voice-skill/internal/skill"
	"flag"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"strings"
)

var flagRunAddr string
var flagLogLevel string
var flagAppID string
var flagValidate bool
var flagVersion string
var flagRecipients string

func parseFlags() {
	// .env is optional; real environment variables take precedence over it
	_ = godotenv.Load()

	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	flag.StringVar(&flagLogLevel, "l", "debug", "log level")
	flag.StringVar(&flagAppID, "app-id", "", "expected application id")
	flag.BoolVar(&flagValidate, "validate", true, "check the application id of incoming requests")
	flag.StringVar(&flagVersion, "v", skill.DefaultVersion, "skill version echoed in responses")
	flag.StringVar(&flagRecipients, "recipients", "", "known recipients as name=userID pairs separated by commas")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}

	if envAppID := os.Getenv("APP_ID"); envAppID != "" {
		flagAppID = envAppID
	}

	if envValidate := os.Getenv("VALIDATE"); envValidate != "" {
		if v, err := strconv.ParseBool(envValidate); err == nil {
			flagValidate = v
		}
	}

	if envVersion := os.Getenv("SKILL_VERSION"); envVersion != "" {
		flagVersion = envVersion
	}

	if envRecipients := os.Getenv("RECIPIENTS"); envRecipients != "" {
		flagRecipients = envRecipients
	}
}

// parseRecipients reads "ann=amzn1.ask.account.A,bob=amzn1.ask.account.B".
// Malformed pairs are skipped.
func parseRecipients(s string) map[string]string {
	recipients := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		name, userID, ok := strings.Cut(pair, "=")
		name, userID = strings.TrimSpace(name), strings.TrimSpace(userID)
		if !ok || name == "" || userID == "" {
			continue
		}
		recipients[name] = userID
	}
	return recipients
}

func skillConfig() skill.Config {
	return skill.Config{
		Validate: flagValidate,
		AppID:    flagAppID,
		Version:  flagVersion,
	}
}
