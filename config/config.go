package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Interview    Interview
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Path string
}

// Interview carries the tunables of the interview flow. All can be overridden
// from the environment.
type Interview struct {
	MinAnswerLength   int
	MaxQuestions      int
	QuestionTimeLimit time.Duration // advisory, never enforced as a hard cutoff
	PassingScore      float64
	LLMTimeout        time.Duration
	EnableVoice       bool
	EnableAnalytics   bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "interview_training.db")
	viper.SetDefault("MIN_ANSWER_LENGTH", 50)
	viper.SetDefault("MAX_QUESTIONS", 10)
	viper.SetDefault("QUESTION_TIME_LIMIT_SECONDS", 300)
	viper.SetDefault("PASSING_SCORE", 70.0)
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 60)
	viper.SetDefault("ENABLE_VOICE", false)
	viper.SetDefault("ENABLE_ANALYTICS", true)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Interview.MinAnswerLength = viper.GetInt("MIN_ANSWER_LENGTH")
	config.Interview.MaxQuestions = viper.GetInt("MAX_QUESTIONS")
	config.Interview.QuestionTimeLimit = time.Duration(viper.GetInt("QUESTION_TIME_LIMIT_SECONDS")) * time.Second
	config.Interview.PassingScore = viper.GetFloat64("PASSING_SCORE")
	config.Interview.LLMTimeout = time.Duration(viper.GetInt("LLM_TIMEOUT_SECONDS")) * time.Second
	config.Interview.EnableVoice = viper.GetBool("ENABLE_VOICE")
	config.Interview.EnableAnalytics = viper.GetBool("ENABLE_ANALYTICS")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("db", config.Database.Path).Msg("Config loaded")
	return &config, nil
}
