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

package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webfolio/internal/domain"
)

type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Level 对外是 Basic/Proficient/Advanced
	Level string `json:"level"`
}

type Project struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Skills      []Skill `json:"skills"`
}

type Course struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Institution string  `json:"institution"`
	Skills      []Skill `json:"skills"`
}

type Certification struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Institution  string  `json:"institution"`
	Date         string  `json:"date"`
	CredentialID string  `json:"credentialId"`
	URL          string  `json:"url"`
	Skills       []Skill `json:"skills"`
}

type ExperienceRecord struct {
	ID          string  `json:"id"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	CompanyName string  `json:"companyName"`
	Title       string  `json:"title"`
	Skills      []Skill `json:"skills"`
}

type EducationalRecord struct {
	ID              string  `json:"id"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	InstitutionName string  `json:"institutionName"`
	Degree          string  `json:"degree"`
	Skills          []Skill `json:"skills"`
}

func newSkill(s domain.Skill) Skill {
	return Skill{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Level:       s.Level.Label(),
	}
}

func newSkills(sks []domain.Skill) []Skill {
	return slice.Map(sks, func(idx int, src domain.Skill) Skill {
		return newSkill(src)
	})
}

func newProject(p domain.Project) Project {
	return Project{
		ID:          p.ID,
		Name:        p.Name,
		StartDate:   p.Start.Format(time.DateOnly),
		EndDate:     p.End.Format(time.DateOnly),
		Description: p.Description,
		URL:         p.URL,
		Skills:      newSkills(p.Skills),
	}
}

func newCourse(c domain.Course) Course {
	return Course{
		ID:          c.ID,
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		Institution: c.Institution,
		Skills:      newSkills(c.Skills),
	}
}

func newCertification(c domain.Certification) Certification {
	return Certification{
		ID:           c.ID,
		Name:         c.Name,
		Institution:  c.Institution,
		Date:         c.Date.Format(time.DateOnly),
		CredentialID: c.CredentialID,
		URL:          c.URL,
		Skills:       newSkills(c.Skills),
	}
}

func newExperienceRecord(r domain.ExperienceRecord) ExperienceRecord {
	return ExperienceRecord{
		ID:          r.ID,
		StartDate:   r.Start.Format(time.DateOnly),
		EndDate:     r.End.Format(time.DateOnly),
		Description: r.Description,
		Location:    r.Location,
		CompanyName: r.CompanyName,
		Title:       r.Title,
		Skills:      newSkills(r.Skills),
	}
}

func newEducationalRecord(r domain.EducationalRecord) EducationalRecord {
	return EducationalRecord{
		ID:              r.ID,
		StartDate:       r.Start.Format(time.DateOnly),
		EndDate:         r.End.Format(time.DateOnly),
		Description:     r.Description,
		Location:        r.Location,
		InstitutionName: r.InstitutionName,
		Degree:          r.Degree,
		Skills:          newSkills(r.Skills),
	}
}
