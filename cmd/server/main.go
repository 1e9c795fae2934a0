package main

import "evermore/internal/app"

// @title           Evermore Operations API
// @version         1.0
// @description     Internal console for the Evermore wedding agency: sales pipeline board, inquiries, opportunities and quotations.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
func main() {
	app.Run()
}
