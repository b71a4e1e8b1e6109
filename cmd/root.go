/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "orbitspec",
	Short: "Contract checker for the Orbit API OpenAPI document",
	Long: `orbitspec asserts the structural contract of the Orbit API's OpenAPI
document: required path templates, schema enums and examples, pagination
headers, authorization responses and shared parameter references.

The document itself is authored and maintained outside this tool; orbitspec
only ever reads it.`,
}

func Execute() {
	cobra.OnInitialize(func() {
		viper.SetConfigName("orbitspec")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			// The config file is optional; anything else is a real error.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalf("Error reading config file: %v", err)
			}
		}
	})
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
