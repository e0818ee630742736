// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields for every method of the interface it
// stands in for. When a function field is nil the mock falls back to a
// simple default behavior, so most tests only override what they assert on:
//
//	skills := mocks.NewMockTable[domain.Skill](store.ErrSkillNotFound)
//	skills.UpdateFn = func(ctx context.Context, id int64, v domain.Assignments) (domain.Skill, error) {
//	    return domain.Skill{}, store.ErrData
//	}
package mocks
