package config

import (
	"encoding/json"
	"os"

	"github.com/dentinhoapp/dentinho/internal/flagx"
	"github.com/dentinhoapp/dentinho/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	AdviceBaseURL  string         `json:"advice_base_url"`
	QuizBaseURL    string         `json:"quiz_base_url"`
	TimeBaseURL    string         `json:"time_base_url"`
	TimeZone       string         `json:"time_zone"`
	DatabaseDSN    string         `json:"database_dsn"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file named by
// the -c/-config flags. Absent file path means no overlay; read or
// unmarshal errors panic (the caller may recover). Zero-valued JSON fields
// leave the corresponding Config fields untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AdviceBaseURL != "" {
		cfg.AdviceBaseURL = jc.AdviceBaseURL
	}
	if jc.QuizBaseURL != "" {
		cfg.QuizBaseURL = jc.QuizBaseURL
	}
	if jc.TimeBaseURL != "" {
		cfg.TimeBaseURL = jc.TimeBaseURL
	}
	if jc.TimeZone != "" {
		cfg.TimeZone = jc.TimeZone
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
