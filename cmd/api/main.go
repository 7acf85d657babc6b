package main

import (
	_ "gestao_projetos/docs"
	"gestao_projetos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestão de Projetos API
// @version         1.0
// @description     Project-management dashboard core (clients, collaborators, projects, inventory, billing) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
