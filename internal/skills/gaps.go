// Package skills reports per-role skill requirements and skill gaps.
package skills

import (
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// Required returns the ordered required-skill list for a role title.
func Required(c *catalog.Catalog, role string) []string {
	return c.RequiredSkills(role)
}

// Missing reports the skills a profile lacks for a role.
//
// Placeholder logic carried over from the reference system: the employee's
// actual skill inventory (the employee_skills relation) is not consulted yet,
// so the first two required skills are reported as missing whenever a role
// requires more than two. Callers should treat the output as a rough gap
// indicator, not an assessment.
func Missing(c *catalog.Catalog, _ types.NormalizedProfile, role string) []string {
	required := c.RequiredSkills(role)
	if len(required) > 2 {
		return required[:2]
	}
	return []string{}
}
