// Package shell renders the shell integration that turns jay's output into a
// directory change.
package shell

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"regexp"
	"text/template"

	"github.com/hernantz/jay/internal/filemanager"
)

// DefaultFunction is the name of the shell function that wraps jay
const DefaultFunction = "j"

//go:embed jay.bash
var BashTemplate string

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ScriptData is substituted into the script template
type ScriptData struct {
	// Command invokes the jay binary
	Command string
	// Function is the name of the shell function users type
	Function string
}

// DefaultScriptData returns the data for a jay binary found on PATH
func DefaultScriptData() ScriptData {
	return ScriptData{Command: "jay", Function: DefaultFunction}
}

// RenderBash renders the bash integration script
func RenderBash(data ScriptData) (string, error) {
	if !identifier.MatchString(data.Function) {
		return "", fmt.Errorf("invalid function name: %q", data.Function)
	}
	if data.Command == "" {
		return "", fmt.Errorf("command is required")
	}

	tmpl, err := template.New("jay.bash").Parse(BashTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// InstallBash writes the rendered bash script to path, replacing any older copy
func InstallBash(ctx context.Context, path string, data ScriptData) error {
	script, err := RenderBash(data)
	if err != nil {
		return err
	}
	files := filemanager.NewManager[string](scriptCodec{})
	if err := files.Write(ctx, path, script); err != nil {
		return fmt.Errorf("failed to write bash script: %w", err)
	}
	return nil
}

type scriptCodec struct{}

func (scriptCodec) Marshal(s string) ([]byte, error) {
	return []byte(s), nil
}

func (scriptCodec) Unmarshal(data []byte) (string, error) {
	return string(data), nil
}
