package config

// ConfigLogger настройки логирования
type ConfigLogger struct {
	File string `mapstructure:"file"`
}

// ConfigRemote настройки удаленного REST хранилища.
// BaseURL — базовый адрес REST API (для Supabase обычно заканчивается на /rest/v1),
// Collection — имя ресурса коллекции заметок.
// APIKey и Secret прикрепляются к каждому запросу как заголовки apikey
// и Authorization: Bearer соответственно.
type ConfigRemote struct {
	BaseURL    string `mapstructure:"base_url"`
	Collection string `mapstructure:"collection"`
	APIKey     string `mapstructure:"api_key"`
	Secret     string `mapstructure:"secret"`
}

// ConfigClient настройки HTTP клиента
type ConfigClient struct {
	RequestTimeout int `mapstructure:"request_timeout"`
	RateLimitRPS   int `mapstructure:"rate_limit_rps"`
	RateLimitBurst int `mapstructure:"rate_limit_burst"`
}

// Config основная структура конфигурации
type Config struct {
	Logger *ConfigLogger `mapstructure:"logger"`
	Remote *ConfigRemote `mapstructure:"remote"`
	Client *ConfigClient `mapstructure:"client"`
}
