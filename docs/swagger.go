package docs

import "github.com/swaggo/swag"

// @title           Taskboard API
// @version         1.0
// @description     API for the task-tracking dashboard: tasks, feedback threads and notifications

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description Registration and authentication

// @tag.name Tasks
// @tag.description Task management operations

// @tag.name Feedback
// @tag.description Feedback and read-state operations

// @tag.name Comments
// @tag.description Threaded replies and likes

// @tag.name Notifications
// @tag.description Assignment notifications

// SwaggerInfo holds the exported Swagger specification.
var SwaggerInfo = &swag.Spec{
	Version:     "1.0",
	Host:        "localhost:8080",
	BasePath:    "/",
	Title:       "Taskboard API",
	Description: "API for the task-tracking dashboard: tasks, feedback threads and notifications",
}

func init() {
	swag.Register(swag.Name, SwaggerInfo)
}
