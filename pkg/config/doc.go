// Package config fills configuration structs from environment variables.
//
// Variables are read from the process environment after optional .env
// files have been applied (github.com/joho/godotenv). Values already present
// in the environment win over .env entries. Struct fields are mapped with
// github.com/caarlos0/env tags:
//
//	type Config struct {
//		BasePath    string `env:"BASE_PATH"`
//		APIEndpoint string `env:"API_ENDPOINT,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
