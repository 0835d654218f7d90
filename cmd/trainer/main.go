package main

import "os"

// @title           Abbreviation Trainer API
// @version         1.0
// @description     Drill the shop's menu abbreviations with flashcards, multiple choice and typing.

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
