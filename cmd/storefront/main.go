// Package main is the entry point for the storefront command.
//
// @title Storefront API
// @version 1.0
// @description Catalog listings, news comments and input checks for the storefront.
//
// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import "github.com/clonecoding/storefront/cmd/storefront/cmd"

func main() {
	cmd.Execute()
}
