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

// SkillLevel 是技能水平。存储里用 Low/Mid/High，对外展示用 Label
type SkillLevel string

const (
	SkillLevelLow  SkillLevel = "Low"
	SkillLevelMid  SkillLevel = "Mid"
	SkillLevelHigh SkillLevel = "High"
)

// Label 返回对外展示的文案
func (l SkillLevel) Label() string {
	switch l {
	case SkillLevelLow:
		return "Basic"
	case SkillLevelMid:
		return "Proficient"
	case SkillLevelHigh:
		return "Advanced"
	default:
		return string(l)
	}
}

type Skill struct {
	ID          string
	Name        string
	Description string
	Level       SkillLevel
}
