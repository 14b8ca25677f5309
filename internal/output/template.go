/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/orien/spektate/internal/author"
	"github.com/orien/spektate/internal/model"
)

// AuthorView is the data passed to user templates for each deployment
type AuthorView struct {
	Deployment *model.Deployment
	Author     *author.Author
}

// Render executes a Go template with Sprig functions against data
func Render(templateContent string, data interface{}) (string, error) {
	tmpl, err := template.New("output").
		Funcs(sprig.TxtFuncMap()).
		Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
