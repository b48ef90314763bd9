// Package catalog provides the static role catalog, salary ranges, and skill
// taxonomy consumed by the scoring engine and the REST API. The catalog is
// read-only after process start.
package catalog

import "strings"

// DefaultSalaryRange is used for roles missing from the salary table.
var DefaultSalaryRange = SalaryRange{Min: 50, Max: 100}

// SalaryRange holds a role's salary band in thousands of currency units.
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Midpoint returns the band midpoint in currency units (not thousands).
func (r SalaryRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2 * 1000
}

// SkillCategory groups skill names under a taxonomy category.
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Catalog is the closed set of job roles the service scores against.
type Catalog struct {
	roles          []string
	ranges         map[string]SalaryRange
	requiredSkills map[string][]string
	categories     []SkillCategory
}

// Default returns the built-in catalog of 14 roles.
func Default() *Catalog {
	return &Catalog{
		roles: []string{
			"Software Engineer", "Data Scientist", "Product Manager", "DevOps Engineer",
			"UI/UX Designer", "QA Engineer", "Business Analyst", "Technical Lead",
			"System Administrator", "Frontend Developer", "Backend Developer",
			"Machine Learning Engineer", "Cybersecurity Analyst", "Database Administrator",
		},
		ranges: map[string]SalaryRange{
			"Software Engineer":         {Min: 50, Max: 120},
			"Data Scientist":            {Min: 70, Max: 150},
			"Product Manager":           {Min: 80, Max: 160},
			"DevOps Engineer":           {Min: 60, Max: 130},
			"UI/UX Designer":            {Min: 45, Max: 100},
			"QA Engineer":               {Min: 40, Max: 90},
			"Business Analyst":          {Min: 50, Max: 110},
			"Technical Lead":            {Min: 90, Max: 180},
			"System Administrator":      {Min: 45, Max: 95},
			"Frontend Developer":        {Min: 45, Max: 105},
			"Backend Developer":         {Min: 55, Max: 125},
			"Machine Learning Engineer": {Min: 80, Max: 170},
			"Cybersecurity Analyst":     {Min: 65, Max: 140},
			"Database Administrator":    {Min: 55, Max: 115},
		},
		requiredSkills: map[string][]string{
			"Software Engineer": {"Python", "JavaScript", "SQL", "Git"},
			"Data Scientist":    {"Python", "Statistics", "Machine Learning", "SQL"},
			"Product Manager":   {"Project Management", "Communication", "Strategic Planning"},
			"DevOps Engineer":   {"Docker", "Kubernetes", "AWS", "Linux"},
			"UI/UX Designer":    {"UI Design", "Figma", "Prototyping", "User Testing"},
		},
		categories: []SkillCategory{
			{Name: "Technical", Skills: []string{"Python", "JavaScript", "Java", "C++", "SQL", "MongoDB", "React", "Angular", "Node.js", "Docker", "Kubernetes", "AWS", "Azure", "GCP"}},
			{Name: "Analytical", Skills: []string{"Data Analysis", "Statistics", "Machine Learning", "Deep Learning", "Business Intelligence", "Excel", "Tableau", "Power BI"}},
			{Name: "Management", Skills: []string{"Project Management", "Team Leadership", "Agile", "Scrum", "Communication", "Strategic Planning"}},
			{Name: "Design", Skills: []string{"UI Design", "UX Research", "Figma", "Adobe Creative Suite", "Prototyping", "User Testing"}},
		},
	}
}

// Roles returns the role titles in catalog order.
func (c *Catalog) Roles() []string {
	out := make([]string, len(c.roles))
	copy(out, c.roles)
	return out
}

// Size returns the number of roles in the catalog.
func (c *Catalog) Size() int {
	return len(c.roles)
}

// SalaryRange returns the salary band for a role title. Unknown roles fall
// back to DefaultSalaryRange rather than failing.
func (c *Catalog) SalaryRange(title string) SalaryRange {
	if r, ok := c.ranges[title]; ok {
		return r
	}
	return DefaultSalaryRange
}

// RequiredSkills returns the ordered required-skill list for a role title.
// Roles without an explicit entry get a generic two-skill placeholder.
func (c *Catalog) RequiredSkills(title string) []string {
	if skills, ok := c.requiredSkills[title]; ok {
		out := make([]string, len(skills))
		copy(out, skills)
		return out
	}
	return []string{"Communication", "Problem Solving"}
}

// SkillCategories returns the skill taxonomy in fixed category order.
func (c *Catalog) SkillCategories() []SkillCategory {
	return c.categories
}

// Category derives a role's category from substring rules on its title.
// Rule order matters: "Machine Learning Engineer" is Engineering, not Data Science.
func Category(title string) string {
	switch {
	case strings.Contains(title, "Engineer") || strings.Contains(title, "Developer"):
		return "Engineering"
	case strings.Contains(title, "Data") || strings.Contains(title, "ML"):
		return "Data Science"
	case strings.Contains(title, "Manager") || strings.Contains(title, "Lead"):
		return "Management"
	case strings.Contains(title, "Designer"):
		return "Design"
	default:
		return "Other"
	}
}
