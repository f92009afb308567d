// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/clearlabel/transparency-portal/internal/bootstrap"
)

// @title						Transparency Portal
// @version					1.0.0
// @description				This is a swagger documentation for the product transparency portal
// @termsOfService				http://swagger.io/terms/
// @host						localhost:3005
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				The authorization token in the 'Bearer access_token' format.
func main() {
	svc, err := bootstrap.InitServers()
	if err != nil {
		// The structured logger is initialized inside InitServers, so a config
		// failure has nowhere else to go but stderr.
		fmt.Fprintf(os.Stderr, "Failed to initialize transparency portal: %v\n", err)
		os.Exit(1)
	}

	svc.Run()
}
