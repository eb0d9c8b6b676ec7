// Command admintoken prints a signed bearer token for the /admin routes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/config"
	"lawfirm-backend/pkg/jwt"
	"lawfirm-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	subject := flag.String("sub", "admin", "token subject")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	manager := jwt.NewManager(cfg.Admin.TokenSecret, "lawfirm-backend")
	token, err := manager.GenerateAdminToken(*subject, cfg.Admin.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign token")
	}
	fmt.Println(token)
}
