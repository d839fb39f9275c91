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

package dao

import "go.mongodb.org/mongo-driver/bson/primitive"

// 日期字段统一存 BSON datetime，映射的时候用 Time() 转出去

type Skill struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Description string `bson:"description"`
	Level       string `bson:"level"`
}

type Project struct {
	ID          string             `bson:"_id"`
	Name        string             `bson:"name"`
	StartDate   primitive.DateTime `bson:"startDate"`
	EndDate     primitive.DateTime `bson:"endDate"`
	Description string             `bson:"description"`
	URL         string             `bson:"url"`
	Skills      []string           `bson:"skills"`
}

type Course struct {
	ID          string   `bson:"_id"`
	Name        string   `bson:"name"`
	Code        string   `bson:"code"`
	Description string   `bson:"description"`
	Institution string   `bson:"institution"`
	Skills      []string `bson:"skills"`
}

type Certification struct {
	ID           string             `bson:"_id"`
	Name         string             `bson:"name"`
	Institution  string             `bson:"institution"`
	Date         primitive.DateTime `bson:"date"`
	CredentialID string             `bson:"credentialId"`
	URL          string             `bson:"url"`
	Skills       []string           `bson:"skills"`
}

// Record 同时承载两种履历，具体哪些字段有效由所在集合决定
type Record struct {
	ID          string             `bson:"_id"`
	StartDate   primitive.DateTime `bson:"startDate"`
	EndDate     primitive.DateTime `bson:"endDate"`
	Description string             `bson:"description"`
	Location    string             `bson:"location"`
	Skills      []string           `bson:"skills"`

	CompanyName string `bson:"companyName,omitempty"`
	Title       string `bson:"title,omitempty"`

	InstitutionName string `bson:"institutionName,omitempty"`
	Degree          string `bson:"degree,omitempty"`
}
