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

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/errs"
	"github.com/ecodeclub/webfolio/internal/repository/dao"
	daomocks "github.com/ecodeclub/webfolio/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestCertificationRepository_GetByID(t *testing.T) {
	issued := time.Date(2022, 5, 10, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name     string
		id       string
		mock     func(ctrl *gomock.Controller) dao.CertificationDAO
		wantCert *domain.Certification
		wantErr  error
	}{
		{
			name: "查询成功，日期按存储值转换",
			id:   "1",
			mock: func(ctrl *gomock.Controller) dao.CertificationDAO {
				d := daomocks.NewMockCertificationDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "1").Return(&dao.Certification{
					ID:           "1",
					Name:         "CKA",
					Institution:  "CNCF",
					Date:         primitive.NewDateTimeFromTime(issued),
					CredentialID: "CKA-123",
					URL:          "https://example.com/cka",
					Skills:       []string{"k8s"},
				}, nil)
				return d
			},
			wantCert: &domain.Certification{
				ID:           "1",
				Name:         "CKA",
				Institution:  "CNCF",
				Date:         primitive.NewDateTimeFromTime(issued).Time(),
				CredentialID: "CKA-123",
				URL:          "https://example.com/cka",
				SkillIDs:     []string{"k8s"},
			},
		},
		{
			name: "缺 name 必填字段",
			id:   "1",
			mock: func(ctrl *gomock.Controller) dao.CertificationDAO {
				d := daomocks.NewMockCertificationDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "1").Return(&dao.Certification{
					ID:           "1",
					Institution:  "CNCF",
					Date:         primitive.NewDateTimeFromTime(issued),
					CredentialID: "CKA-123",
					URL:          "https://example.com/cka",
				}, nil)
				return d
			},
			wantErr: errs.MissingFieldError{Kind: "Certification", ID: "1"},
		},
		{
			name: "查不到返回 nil",
			id:   "404",
			mock: func(ctrl *gomock.Controller) dao.CertificationDAO {
				d := daomocks.NewMockCertificationDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "404").Return(nil, nil)
				return d
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCertificationRepository(tc.mock(ctrl))
			cert, err := repo.GetByID(context.Background(), tc.id)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantCert, cert)
		})
	}
}

func TestCertificationRepository_GetByID_ErrorMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockCertificationDAO(ctrl)
	d.EXPECT().FindByID(gomock.Any(), "1").Return(&dao.Certification{
		ID:           "1",
		Institution:  "CNCF",
		Date:         primitive.NewDateTimeFromTime(time.Now()),
		CredentialID: "CKA-123",
		URL:          "https://example.com/cka",
	}, nil)
	repo := NewCertificationRepository(d)
	_, err := repo.GetByID(context.Background(), "1")
	require.Error(t, err)
	assert.Equal(t, "Certification with ID 1 is missing mandatory fields.", err.Error())
}

func TestCertificationRepository_GetByInstitution(t *testing.T) {
	testCases := []struct {
		name        string
		institution string
		mock        func(ctrl *gomock.Controller) dao.CertificationDAO
		wantLen     int
		wantErr     error
	}{
		{
			name:        "按机构查询成功",
			institution: "AWS",
			mock: func(ctrl *gomock.Controller) dao.CertificationDAO {
				d := daomocks.NewMockCertificationDAO(ctrl)
				d.EXPECT().FindByInstitution(gomock.Any(), "AWS").Return([]dao.Certification{
					{
						ID: "1", Name: "SAA", Institution: "AWS",
						Date:         primitive.NewDateTimeFromTime(time.Now()),
						CredentialID: "SAA-1", URL: "https://example.com/saa",
					},
					{
						ID: "2", Name: "DVA", Institution: "AWS",
						Date:         primitive.NewDateTimeFromTime(time.Now()),
						CredentialID: "DVA-1", URL: "https://example.com/dva",
					},
				}, nil)
				return d
			},
			wantLen: 2,
		},
		{
			name:        "机构参数为空，不碰存储",
			institution: "",
			mock: func(ctrl *gomock.Controller) dao.CertificationDAO {
				return daomocks.NewMockCertificationDAO(ctrl)
			},
			wantErr: errs.InvalidArgumentError{Field: "Institution"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCertificationRepository(tc.mock(ctrl))
			certs, err := repo.GetByInstitution(context.Background(), tc.institution)
			assert.Equal(t, tc.wantErr, err)
			assert.Len(t, certs, tc.wantLen)
		})
	}
}
