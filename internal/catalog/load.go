package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// catalogSchema validates external catalog files before they replace the
// built-in defaults. Salary bounds are in thousands.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["roles"],
  "properties": {
    "roles": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title", "min_salary", "max_salary"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "min_salary": {"type": "number", "exclusiveMinimum": 0},
          "max_salary": {"type": "number", "exclusiveMinimum": 0},
          "required_skills": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    },
    "skill_categories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "skills"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "skills": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

// catalogFile mirrors the on-disk catalog document.
type catalogFile struct {
	Roles []struct {
		Title          string   `json:"title"`
		MinSalary      float64  `json:"min_salary"`
		MaxSalary      float64  `json:"max_salary"`
		RequiredSkills []string `json:"required_skills,omitempty"`
	} `json:"roles"`
	SkillCategories []SkillCategory `json:"skill_categories,omitempty"`
}

// LoadFile reads a catalog JSON document, validates it against the embedded
// schema, and builds a Catalog from it. Skill categories fall back to the
// default taxonomy when the file omits them.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and builds a Catalog from raw JSON.
func Parse(data []byte) (*Catalog, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate catalog document: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		first := "invalid document"
		if len(errs) > 0 {
			first = errs[0].String()
		}
		return nil, fmt.Errorf("catalog schema violation (%d errors): %s", len(errs), first)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	c := &Catalog{
		roles:          make([]string, 0, len(file.Roles)),
		ranges:         make(map[string]SalaryRange, len(file.Roles)),
		requiredSkills: make(map[string][]string),
		categories:     file.SkillCategories,
	}
	for _, role := range file.Roles {
		if role.MaxSalary < role.MinSalary {
			return nil, fmt.Errorf("role %q: max_salary %.0f below min_salary %.0f", role.Title, role.MaxSalary, role.MinSalary)
		}
		c.roles = append(c.roles, role.Title)
		c.ranges[role.Title] = SalaryRange{Min: role.MinSalary, Max: role.MaxSalary}
		if len(role.RequiredSkills) > 0 {
			c.requiredSkills[role.Title] = role.RequiredSkills
		}
	}
	if len(c.categories) == 0 {
		c.categories = Default().categories
	}
	return c, nil
}
