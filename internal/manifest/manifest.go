// Package manifest inspects application manifests before they are handed to
// the runtime. The install workflow never depends on it.
package manifest

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/qri-io/jsonschema"
)

//go:embed schema.json
var schemaRaw []byte

var (
	ErrAppKeyNotDeclared   = errors.New("app key not declared in manifest")
	ErrNotDashboardOverlay = errors.New("application is not a dashboard overlay")
)

type Manifest struct {
	Source       string        `json:"source,omitempty"`
	Applications []Application `json:"applications"`
}

type Application struct {
	AppKey             string                      `json:"app_key"`
	LaunchType         string                      `json:"launch_type"`
	BinaryPathLinux    string                      `json:"binary_path_linux,omitempty"`
	BinaryPathWindows  string                      `json:"binary_path_windows,omitempty"`
	URL                string                      `json:"url,omitempty"`
	Arguments          string                      `json:"arguments,omitempty"`
	IsDashboardOverlay bool                        `json:"is_dashboard_overlay"`
	Strings            map[string]LocalizedStrings `json:"strings,omitempty"`
}

type LocalizedStrings struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SchemaError lists every schema violation in a manifest.
type SchemaError struct {
	Errors []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid manifest:\n%s", strings.Join(e.Errors, "\n"))
}

func keyError(errs []jsonschema.KeyError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return &SchemaError{Errors: msgs}
}

// Parse validates data against the manifest schema and decodes it.
func Parse(data []byte) (*Manifest, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(schemaRaw, rs); err != nil {
		return nil, fmt.Errorf("invalid JSON schema: %s", err)
	}
	keyErrs, err := rs.ValidateBytes(context.Background(), data)
	if err != nil {
		return nil, fmt.Errorf("error validating manifest: %w", err)
	}
	if len(keyErrs) != 0 {
		return nil, keyError(keyErrs)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Application returns the declaration for appKey.
func (m *Manifest) Application(appKey string) (*Application, error) {
	for i := range m.Applications {
		if m.Applications[i].AppKey == appKey {
			return &m.Applications[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAppKeyNotDeclared, appKey)
}

// ValidateFile checks that the manifest at path is well formed and declares
// appKey as a dashboard overlay.
func ValidateFile(path string, appKey string) (*Application, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	app, err := m.Application(appKey)
	if err != nil {
		return nil, err
	}
	if !app.IsDashboardOverlay {
		return nil, fmt.Errorf("%w: %s", ErrNotDashboardOverlay, appKey)
	}
	return app, nil
}
