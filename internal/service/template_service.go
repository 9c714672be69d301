// internal/service/template_service.go
package service

import (
	"strings"

	"github.com/alertemeds/alertemeds-backend/internal/model"
)

// RenderTemplate substitutes {{key}} placeholders.
func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{{"+k+"}}", v)
	}
	return result
}

// contactData exposes the placeholders campaign templates may use.
func contactData(c model.Contact) map[string]string {
	return map[string]string{
		"name": c.Name,
		"city": c.City,
		"type": c.Type,
	}
}
