package main

import (
	"github.com/prypal/backend/cmd/app"
)

func main() {
	app.Run()
}
