// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import "time"

type Certification struct {
	ID           string
	Name         string
	Institution  string
	Date         time.Time
	CredentialID string
	URL          string
	SkillIDs     []string
	Skills       []Skill
}

func (c Certification) SkillRefs() []string {
	return c.SkillIDs
}

func (c Certification) WithSkills(skills []Skill) Certification {
	c.Skills = skills
	c.SkillIDs = nil
	return c
}
