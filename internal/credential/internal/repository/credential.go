// Copyright 2024 mekongtech
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

	"github.com/ecodeclub/ekit/slice"

	"github.com/mekongtech/recruitment/internal/credential/internal/domain"
	"github.com/mekongtech/recruitment/internal/credential/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type CredentialRepository interface {
	Create(ctx context.Context, c domain.Credential) (int64, error)
	DeactivateActive(ctx context.Context, candidateID int64, stage domain.Stage) error
	FindByLinkID(ctx context.Context, linkID string) (domain.Credential, error)
	FindByID(ctx context.Context, id int64) (domain.Credential, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Credential, error)
	FindActiveExpiringBetween(ctx context.Context, begin, end int64) ([]domain.Credential, error)

	UpdateExpiry(ctx context.Context, id int64, expiresAt int64) (bool, error)
	MarkAutoExtended(ctx context.Context, id int64, expiresAt int64) (bool, error)
	MarkReminder24hSent(ctx context.Context, id int64) (bool, error)
	MarkReminder3hSent(ctx context.Context, id int64) (bool, error)
	ExpireOverdue(ctx context.Context, now int64) (int64, error)

	IncrFailedAttempts(ctx context.Context, id int64) error
	RecordSuccess(ctx context.Context, id int64, usedAt int64, ip string) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type credentialRepository struct {
	dao dao.CredentialDAO
}

func NewCredentialRepository(d dao.CredentialDAO) CredentialRepository {
	return &credentialRepository{dao: d}
}

func (r *credentialRepository) Create(ctx context.Context, c domain.Credential) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(c))
}

func (r *credentialRepository) DeactivateActive(ctx context.Context, candidateID int64, stage domain.Stage) error {
	return r.dao.DeactivateActive(ctx, candidateID, uint8(stage))
}

func (r *credentialRepository) FindByLinkID(ctx context.Context, linkID string) (domain.Credential, error) {
	entity, err := r.dao.FindByLinkId(ctx, linkID)
	if err != nil {
		return domain.Credential{}, err
	}
	return r.toDomain(entity), nil
}

func (r *credentialRepository) FindByID(ctx context.Context, id int64) (domain.Credential, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Credential{}, err
	}
	return r.toDomain(entity), nil
}

func (r *credentialRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Credential, error) {
	entities, err := r.dao.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, e dao.Credential) domain.Credential {
		return r.toDomain(e)
	}), nil
}

func (r *credentialRepository) FindActiveExpiringBetween(ctx context.Context, begin, end int64) ([]domain.Credential, error) {
	entities, err := r.dao.FindActiveExpiringBetween(ctx, begin, end)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, e dao.Credential) domain.Credential {
		return r.toDomain(e)
	}), nil
}

func (r *credentialRepository) UpdateExpiry(ctx context.Context, id int64, expiresAt int64) (bool, error) {
	affected, err := r.dao.UpdateExpiry(ctx, id, expiresAt)
	return affected > 0, err
}

func (r *credentialRepository) MarkAutoExtended(ctx context.Context, id int64, expiresAt int64) (bool, error) {
	affected, err := r.dao.MarkAutoExtended(ctx, id, expiresAt)
	return affected > 0, err
}

func (r *credentialRepository) MarkReminder24hSent(ctx context.Context, id int64) (bool, error) {
	affected, err := r.dao.MarkReminder24hSent(ctx, id)
	return affected > 0, err
}

func (r *credentialRepository) MarkReminder3hSent(ctx context.Context, id int64) (bool, error) {
	affected, err := r.dao.MarkReminder3hSent(ctx, id)
	return affected > 0, err
}

func (r *credentialRepository) ExpireOverdue(ctx context.Context, now int64) (int64, error) {
	return r.dao.ExpireOverdue(ctx, now)
}

func (r *credentialRepository) IncrFailedAttempts(ctx context.Context, id int64) error {
	return r.dao.IncrFailedAttempts(ctx, id)
}

func (r *credentialRepository) RecordSuccess(ctx context.Context, id int64, usedAt int64, ip string) error {
	return r.dao.RecordSuccess(ctx, id, usedAt, ip)
}

func (r *credentialRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, string(status))
}

func (r *credentialRepository) toEntity(c domain.Credential) dao.Credential {
	return dao.Credential{
		Id:              c.ID,
		CandidateId:     c.CandidateID,
		LinkId:          c.LinkID,
		SecretHash:      c.SecretHash,
		Stage:           uint8(c.Stage),
		IssuedAt:        c.IssuedAt,
		ExpiresAt:       c.ExpiresAt,
		Status:          string(c.Status),
		FailedAttempts:  c.FailedAttempts,
		AutoExtended:    c.AutoExtended,
		ExtensionCount:  c.ExtensionCount,
		Reminder24hSent: c.Reminder24hSent,
		Reminder3hSent:  c.Reminder3hSent,
		LastUsedAt:      c.LastUsedAt,
		LastUsedIP:      c.LastUsedIP,
	}
}

func (r *credentialRepository) toDomain(e dao.Credential) domain.Credential {
	return domain.Credential{
		ID:              e.Id,
		CandidateID:     e.CandidateId,
		LinkID:          e.LinkId,
		SecretHash:      e.SecretHash,
		Stage:           domain.Stage(e.Stage),
		IssuedAt:        e.IssuedAt,
		ExpiresAt:       e.ExpiresAt,
		Status:          domain.Status(e.Status),
		FailedAttempts:  e.FailedAttempts,
		AutoExtended:    e.AutoExtended,
		ExtensionCount:  e.ExtensionCount,
		Reminder24hSent: e.Reminder24hSent,
		Reminder3hSent:  e.Reminder3hSent,
		LastUsedAt:      e.LastUsedAt,
		LastUsedIP:      e.LastUsedIP,
		Ctime:           e.Ctime,
		Utime:           e.Utime,
	}
}
