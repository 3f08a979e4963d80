package main

import (
	"restaurant-api/cmd"

	_ "restaurant-api/docs" // Swagger docs served under /swagger
)

// @title           Restaurant API
// @version         1.0
// @description     Menus, submenus and dishes with cascade deletes and a read-through response cache.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/v1
// @schemes   http https
func main() {
	cmd.Execute()
}
