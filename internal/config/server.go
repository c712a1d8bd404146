package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Server is the HTTP server configuration, read from a YAML file with
// environment-variable overrides. Every field has a default so the server
// starts with no config file at all.
type Server struct {
	BindIP     string `yaml:"bind_ip" env:"API_BIND_IP" env-default:"0.0.0.0"`
	Port       string `yaml:"port" env:"API_PORT" env-default:"8080"`
	Env        string `yaml:"env" env:"API_ENV" env-default:"development"`
	TariffFile string `yaml:"tariff_file" env:"TARIFF_FILE" env-default:""`
}

// ReadServer loads the server config. A missing file is not an error — the
// env/default values apply; a present but malformed file is.
func ReadServer(path string) (*Server, error) {
	srv := &Server{}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, srv); err != nil {
				return nil, err
			}
			return srv, nil
		}
	}
	if err := cleanenv.ReadEnv(srv); err != nil {
		return nil, err
	}
	return srv, nil
}

func (s *Server) Addr() string {
	return s.BindIP + ":" + s.Port
}
