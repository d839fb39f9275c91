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

type Project struct {
	ID          string
	Name        string
	Start       time.Time
	End         time.Time
	Description string
	URL         string
	// SkillIDs 是落库形态，只存技能 ID。解析之后 Skills 取代 SkillIDs
	SkillIDs []string
	Skills   []Skill
}

func (p Project) SkillRefs() []string {
	return p.SkillIDs
}

// WithSkills 返回替换了技能列表的副本，不修改原对象
func (p Project) WithSkills(skills []Skill) Project {
	p.Skills = skills
	p.SkillIDs = nil
	return p
}
