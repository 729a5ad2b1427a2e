package main

// @title AI Anywhere APIs
// @version 1.0
// @description Runs AI operations against an OpenAI-compatible provider.

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	_ "ai-anywhere/docs"
	protocol "ai-anywhere/protocal"

	_ "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
