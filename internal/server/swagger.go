package server

//go:generate swag init -g internal/server/server.go -o docs/swagger

// @title Aria API
// @version 0.1
// @description Interactive documentation for the page accessibility analysis API.
// @contact.name Aria Maintainers
// @contact.url https://github.com/raysh454/aria
// @BasePath /
