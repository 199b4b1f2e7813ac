package main

import "github.com/labelreader/label-api/cmd"

// @title           Label Reader API
// @version         1.0.0
// @description     A track submission and review API for artists and labels
// @contact.name    API Support
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token issued by the identity provider
func main() {
	cmd.Execute()
}
