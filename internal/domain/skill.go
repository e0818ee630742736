package domain

// Skill is a single skill. Category holds a SkillCategory name, not an id.
type Skill struct {
	ID       int64   `json:"id"       db:"id"`
	Name     string  `json:"name"     db:"name"`
	Category string  `json:"category" db:"category"`
	Level    int     `json:"level"    db:"level"`
	Icon     *string `json:"icon"     db:"icon"`
}

// SkillInput is the create and full-replace payload for a skill.
type SkillInput struct {
	Name     string  `json:"name"     validate:"required"`
	Category string  `json:"category" validate:"required"`
	Level    *int    `json:"level"    validate:"required,min=0,max=100"`
	Icon     *string `json:"icon"`
}

// Assignments implements Record.
func (s SkillInput) Assignments() Assignments {
	return Assignments{
		{Column: "name", Value: s.Name},
		{Column: "category", Value: s.Category},
		{Column: "level", Value: nullable(s.Level)},
		{Column: "icon", Value: nullable(s.Icon)},
	}
}

// SkillCategory groups skills by name.
type SkillCategory struct {
	ID   int64  `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
}

// SkillCategoryInput is the create payload for a skill category.
type SkillCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// Assignments implements Record.
func (c SkillCategoryInput) Assignments() Assignments {
	return Assignments{{Column: "name", Value: c.Name}}
}

// CategoryAssignment moves a skill to the named category.
func CategoryAssignment(name string) Assignments {
	return Assignments{{Column: "category", Value: name}}
}

// MigrationResult reports how many skills were moved before a category was deleted.
type MigrationResult struct {
	Success  bool `json:"success"`
	Migrated int  `json:"migrated"`
}
