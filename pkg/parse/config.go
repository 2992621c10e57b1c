package parse

import (
	"github.com/spf13/viper"
)

const (
	defaultAPIURL = "https://api.siliconflow.cn/v1/chat/completions"
	defaultModel  = "deepseek-ai/DeepSeek-V3"
)

// Config holds the settings for the chat-completions endpoint the adapter
// talks to. Any OpenAI-compatible endpoint works.
type Config struct {
	APIKey string
	APIURL string
	Model  string
}

// LoadConfig reads adapter settings from the .agenda config file or the
// AGENDA_API_KEY / AGENDA_API_URL / AGENDA_MODEL environment variables.
func LoadConfig() Config {
	viper.SetDefault("api_url", defaultAPIURL)
	viper.SetDefault("model", defaultModel)
	viper.SetEnvPrefix("AGENDA")
	viper.AutomaticEnv()

	return Config{
		APIKey: viper.GetString("api_key"),
		APIURL: viper.GetString("api_url"),
		Model:  viper.GetString("model"),
	}
}
