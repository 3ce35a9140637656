package notifyclient

type configSource interface {
	GetNotifyClient() Config
}

type Config struct {
	ApiToken string `yaml:"apiToken"`
	BaseUrl  string `yaml:"baseUrl"`
}
