// Package main provides the CLI entry point for dagrooster.
package main

func main() {
	Execute()
}
