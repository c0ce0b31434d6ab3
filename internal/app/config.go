package app

import (
	"strings"
	"time"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/utils"
)

type Config struct {
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	EngraveFee      float64
	SessionMaxIdle  time.Duration
	CORSOrigins     []string
	Environment     string
	Version         string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	engraveFee := utils.GetEnvAsFloat("ENGRAVE_FEE", 4.5, log)
	sessionMaxIdleSeconds := utils.GetEnvAsInt("CUSTOMIZE_SESSION_MAX_IDLE", 1800, log)

	var origins []string
	for _, o := range strings.Split(utils.GetEnv("CORS_ORIGINS", "", log), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
		EngraveFee:      engraveFee,
		SessionMaxIdle:  time.Duration(sessionMaxIdleSeconds) * time.Second,
		CORSOrigins:     origins,
		Environment:     utils.GetEnv("ENVIRONMENT", "development", log),
		Version:         utils.GetEnv("SERVICE_VERSION", "dev", log),
	}
}
