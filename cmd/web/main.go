package main

import "hatamo_backend/internal/app"

func main() {
	app.Run()
}
