// Package refs holds the literature sources behind the IQR-BR weight table.
package refs

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/iqrbr/iqr/pkg/scoring"
	"gopkg.in/yaml.v3"
)

//go:embed references.yaml
var referencesYAML []byte

// Reference is a single literature source tied to one or more factors.
type Reference struct {
	Factors []scoring.Factor `json:"factors" yaml:"factors"`
	Authors string           `json:"authors" yaml:"authors"`
	Title   string           `json:"title" yaml:"title"`
	Source  string           `json:"source" yaml:"source"`
	Year    int              `json:"year" yaml:"year"`
}

var (
	loadOnce sync.Once
	loaded   []Reference
	loadErr  error
)

// List returns the embedded references in file order.
func List() ([]Reference, error) {
	loadOnce.Do(func() {
		var list []Reference
		if err := yaml.Unmarshal(referencesYAML, &list); err != nil {
			loadErr = fmt.Errorf("parsing embedded references: %w", err)
			return
		}
		loaded = list
	})
	return loaded, loadErr
}

// ForFactor returns the references attributed to the given factor.
func ForFactor(f scoring.Factor) ([]Reference, error) {
	all, err := List()
	if err != nil {
		return nil, err
	}
	var list []Reference
	for _, r := range all {
		for _, rf := range r.Factors {
			if rf == f {
				list = append(list, r)
				break
			}
		}
	}
	return list, nil
}
