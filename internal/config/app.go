package config

type AppConfig struct {
	Server   ServerConfig
	Log      LogConfig
	Presence PresenceConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	presenceCfg, err := LoadPresence()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server:   serverCfg,
		Log:      logCfg,
		Presence: presenceCfg,
	}, nil
}
