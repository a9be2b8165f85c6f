package main

import (
	"log"

	"github.com/xyxYang/geometry-calculator/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
