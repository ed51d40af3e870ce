package handlers

import (
	"context"
	"fmt"
)

// Doctor reports whether the required client tools are installed.
func Doctor(_ context.Context) error {
	checks := checkDefaultPrereqs()

	fmt.Println("Checking client tools:")
	for _, res := range checks.Results {
		if res.Found {
			version := res.Version
			if version == "" {
				version = "version unknown"
			}
			fmt.Printf("  [OK] %-8s %s (%s)\n", res.Tool.Name, res.Path, version)
			continue
		}
		fmt.Printf("  [!!] %-8s not found - %s\n", res.Tool.Name, res.Tool.Description)
		fmt.Printf("       install: %s\n", res.Tool.InstallURL)
	}

	if checks.HasErrors() {
		return checks.Error()
	}
	fmt.Println("All required tools are installed.")
	return nil
}
