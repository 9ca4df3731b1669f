// Package matrixio loads the decision matrix and control catalogue from
// disk. These are configuration: a malformed file is fatal at startup, and
// nothing here is re-validated per evaluation.
package matrixio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/assuranceops/verdict/internal/readiness"
)

var validate = validator.New()

// LoadDecisionMatrix reads and validates a decision matrix JSON file.
func LoadDecisionMatrix(path string) (readiness.DecisionMatrix, error) {
	var m readiness.DecisionMatrix

	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read decision matrix: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse decision matrix: %w", err)
	}
	if err := validate.Struct(m); err != nil {
		return m, fmt.Errorf("invalid decision matrix %s: %w", path, err)
	}
	return m, nil
}

// Control is one row of the control catalogue.
type Control struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// LoadControlCatalogue reads a CSV catalogue with control_id,control_title
// columns.
func LoadControlCatalogue(path string) ([]Control, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open control catalogue: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalogue header: %w", err)
	}

	idCol, titleCol := -1, -1
	for i, name := range header {
		switch name {
		case "control_id":
			idCol = i
		case "control_title":
			titleCol = i
		}
	}
	if idCol < 0 || titleCol < 0 {
		return nil, fmt.Errorf("catalogue %s missing control_id/control_title columns", path)
	}

	var controls []Control
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalogue row: %w", err)
		}
		controls = append(controls, Control{ID: row[idCol], Title: row[titleCol]})
	}
	return controls, nil
}
