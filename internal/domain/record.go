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

// RecordKind 是履历类型，决定读哪个集合、走哪套校验
type RecordKind string

const (
	RecordKindExperience RecordKind = "experience"
	RecordKindEducation  RecordKind = "education"
)

func (k RecordKind) Valid() bool {
	return k == RecordKindExperience || k == RecordKindEducation
}

// Record 是工作经历和教育经历的公共部分
type Record struct {
	ID          string
	Start       time.Time
	End         time.Time
	Description string
	Location    string
	SkillIDs    []string
	Skills      []Skill
}

func (r Record) SkillRefs() []string {
	return r.SkillIDs
}

// ExperienceRecord 代表工作经历
type ExperienceRecord struct {
	Record
	CompanyName string
	Title       string
}

func (r ExperienceRecord) WithSkills(skills []Skill) ExperienceRecord {
	r.Skills = skills
	r.SkillIDs = nil
	return r
}

// EducationalRecord 代表教育经历
type EducationalRecord struct {
	Record
	InstitutionName string
	Degree          string
}

func (r EducationalRecord) WithSkills(skills []Skill) EducationalRecord {
	r.Skills = skills
	r.SkillIDs = nil
	return r
}
